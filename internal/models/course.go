package models

import "time"

// Course (Курс) — публичная категория галереи.
// Name и Slug уникальны во всем хранилище, Slug неизменяем после создания.
type Course struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
