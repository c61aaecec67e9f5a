package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// WriteAttachment отдаёт файл на скачивание. Имя файла кириллическое,
// поэтому кроме filename* пишется ASCII-запасной вариант для старых клиентов.
func WriteAttachment(w http.ResponseWriter, filename, contentType string, data []byte) error {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", ContentDisposition(filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)

	_, err := w.Write(data)
	return err
}

func ContentDisposition(filename string) string {
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, asciiFallback(filename), url.PathEscape(filename))
}

func asciiFallback(name string) string {
	out := make([]byte, 0, len(name))
	for _, r := range name {
		switch {
		case r == '"' || r == '\\':
			out = append(out, '_')
		case r < 0x20 || r > 0x7e:
			out = append(out, '_')
		default:
			out = append(out, byte(r))
		}
	}
	return string(out)
}
