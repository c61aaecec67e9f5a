package document

import (
	"fmt"
	"time"

	"jewelry-crm/internal/constants"
	"jewelry-crm/internal/service/report"
	"jewelry-crm/internal/storage"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Filename возвращает «Счёт_СЧ-1-20250305120000.pdf», для неизвестного вида «Документ_…».
func Filename(kind storage.DocumentKind, number string) string {
	return fmt.Sprintf("%s_%s.pdf", constants.DocumentLabel(kind), number)
}

func BriefFilename(orderID int64, now time.Time) string {
	return fmt.Sprintf("ТЗ_Заказ_%d_%s.pdf", orderID, now.Format("20060102"))
}

func ReportFilename(p report.Period, ext string) string {
	return fmt.Sprintf("Отчёт_%s.%s", p.String(), ext)
}
