package document

// Page описывает промежуточную модель документа: упорядоченные секции из типизированных блоков.
// Не зависит от формата вывода, его отрисовывает Backend.
type Page struct {
	Kind     string
	Title    string
	Sections []Section
}

// Section: именованный блок страницы. Name служит для поиска, Title печатается как заголовок.
type Section struct {
	Name   string
	Title  string
	Blocks []Block
}

type Block interface {
	block()
}

type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Heading: Level 0 у заголовка документа, 1 у заголовка раздела.
type Heading struct {
	Text  string
	Level int
}

type Paragraph struct {
	Text  string
	Bold  bool
	Align Align
}

type Field struct {
	Key   string
	Value string
}

type KeyValue struct {
	Fields []Field
}

// Column.Width: доля ширины страницы. Если у всех колонок пустой Title, шапка не печатается.
type Column struct {
	Title string
	Width float64
	Align Align
}

type Table struct {
	Columns  []Column
	Rows     [][]string
	Bordered bool
}

// Totals: итоговые строки под таблицей, прижаты вправо.
type Totals struct {
	Fields []Field
}

type Signatures struct {
	Left  []string
	Right []string
}

// Spacer: вертикальный отступ в миллиметрах.
type Spacer struct {
	Height float64
}

func (Heading) block()    {}
func (Paragraph) block()  {}
func (KeyValue) block()   {}
func (Table) block()      {}
func (Totals) block()     {}
func (Signatures) block() {}
func (Spacer) block()     {}

// Section возвращает секцию по имени или nil.
func (p *Page) Section(name string) *Section {
	for i := range p.Sections {
		if p.Sections[i].Name == name {
			return &p.Sections[i]
		}
	}
	return nil
}

// Text: весь печатаемый текст страницы в порядке вывода.
func (p *Page) Text() []string {
	var out []string
	for _, s := range p.Sections {
		out = append(out, s.Text()...)
	}
	return out
}

func (s Section) Text() []string {
	var out []string
	if s.Title != "" {
		out = append(out, s.Title)
	}
	for _, b := range s.Blocks {
		switch b := b.(type) {
		case Heading:
			out = append(out, b.Text)
		case Paragraph:
			out = append(out, b.Text)
		case KeyValue:
			for _, f := range b.Fields {
				out = append(out, f.Key, f.Value)
			}
		case Totals:
			for _, f := range b.Fields {
				out = append(out, f.Key, f.Value)
			}
		case Table:
			for _, c := range b.Columns {
				if c.Title != "" {
					out = append(out, c.Title)
				}
			}
			for _, row := range b.Rows {
				out = append(out, row...)
			}
		case Signatures:
			out = append(out, b.Left...)
			out = append(out, b.Right...)
		}
	}
	return out
}
