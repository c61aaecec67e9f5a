// Package numwords переводит целые числа в русскую пропись для сумм в документах.
package numwords

import (
	"errors"
	"strings"
)

// Max: наибольшее поддерживаемое число (три разряда: миллионы, тысячи, единицы).
const Max = 999_999_999

var ErrOutOfRange = errors.New("число вне диапазона 0..999 999 999")

var (
	units    = [...]string{"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	unitsFem = [...]string{"", "одна", "две", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	teens    = [...]string{"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать",
		"пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать"}
	tens = [...]string{"", "", "двадцать", "тридцать", "сорок", "пятьдесят",
		"шестьдесят", "семьдесят", "восемьдесят", "девяносто"}
	hundreds = [...]string{"", "сто", "двести", "триста", "четыреста",
		"пятьсот", "шестьсот", "семьсот", "восемьсот", "девятьсот"}
)

type scale struct {
	size     int64
	feminine bool
	forms    [3]string // один, два-четыре, много
}

var scales = [...]scale{
	{size: 1_000_000, forms: [3]string{"миллион", "миллиона", "миллионов"}},
	{size: 1_000, feminine: true, forms: [3]string{"тысяча", "тысячи", "тысяч"}},
}

// Convert возвращает пропись числа n: 0 → "ноль", 1000 → "одна тысяча".
func Convert(n int64) (string, error) {
	if n < 0 || n > Max {
		return "", ErrOutOfRange
	}
	if n == 0 {
		return "ноль", nil
	}

	var words []string
	rest := n
	for _, sc := range scales {
		group := rest / sc.size
		rest %= sc.size
		if group == 0 {
			continue
		}
		words = append(words, belowThousand(int(group), sc.feminine)...)
		words = append(words, sc.forms[pluralForm(group)])
	}
	if rest > 0 {
		words = append(words, belowThousand(int(rest), false)...)
	}

	return strings.Join(words, " "), nil
}

// Capitalize поднимает регистр первой буквы, как в строках «Сумма прописью».
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func belowThousand(num int, feminine bool) []string {
	var words []string

	if h := num / 100; h > 0 {
		words = append(words, hundreds[h])
	}

	remainder := num % 100
	if remainder >= 10 && remainder <= 19 {
		return append(words, teens[remainder-10])
	}

	if t := remainder / 10; t > 0 {
		words = append(words, tens[t])
	}
	if u := remainder % 10; u > 0 {
		if feminine {
			words = append(words, unitsFem[u])
		} else {
			words = append(words, units[u])
		}
	}

	return words
}

// pluralForm возвращает 0 для «тысяча», 1 для «тысячи», 2 для «тысяч». 11–14 всегда дают форму «много».
func pluralForm(count int64) int {
	lastTwo := count % 100
	last := count % 10
	switch {
	case lastTwo >= 11 && lastTwo <= 14:
		return 2
	case last == 1:
		return 0
	case last >= 2 && last <= 4:
		return 1
	default:
		return 2
	}
}
