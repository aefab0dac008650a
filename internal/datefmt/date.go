// Package datefmt formats order timestamps for the admin pages.
package datefmt

import (
	"fmt"
	"time"
)

// month names in genitive case
var months = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// FullDate returns the full date of t, e.g. "2 января 2006 г."
func FullDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d г.", t.Day(), months[t.Month()-1], t.Year())
}
