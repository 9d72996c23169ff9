package model

import "time"

type Transaction struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"idUser"`
	Description string    `json:"description"`
	Income      float64   `json:"income"`
	Outgoing    float64   `json:"outgoing"`
	Date        time.Time `json:"date"`
}
