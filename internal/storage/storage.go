package storage

import "errors"

var (
	ErrOrderNotFound        = errors.New("заказ не найден")
	ErrCustomerNotFound     = errors.New("клиент не найден")
	ErrDocumentNotFound     = errors.New("документ не найден")
	ErrWorkerNotFound       = errors.New("сотрудник не найден")
	ErrDocumentNumberExists = errors.New("документ с таким номером уже существует")
)
