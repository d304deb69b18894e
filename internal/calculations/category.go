package calculations

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PayerCategory — тип плательщика: физическое или юридическое лицо
type PayerCategory int

const (
	CategoryUnknown PayerCategory = iota
	Individual
	LegalEntity
)

// Ставки за каждый месяц досрочной выплаты
const (
	IndividualMonthlyRate  = 0.069
	LegalEntityMonthlyRate = 0.038
)

// ErrInvalidCategory возвращается, когда тип плательщика не распознан
var ErrInvalidCategory = errors.New("недопустимый тип плательщика")

// InvalidCategoryError хранит исходный ввод, который не удалось распознать
type InvalidCategoryError struct {
	Input string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidCategory, e.Input)
}

func (e *InvalidCategoryError) Unwrap() error {
	return ErrInvalidCategory
}

var acceptedSpellings = map[string]PayerCategory{
	"f":               Individual,
	"fisica":          Individual,
	"pessoa fisica":   Individual,
	"pf":              Individual,
	"j":               LegalEntity,
	"juridica":        LegalEntity,
	"pessoa juridica": LegalEntity,
	"pj":              LegalEntity,
}

// NormalizeCategoryText обрезает пробелы, приводит к нижнему регистру,
// применяет совместимую декомпозицию (NFKD) и убирает диакритику
func NormalizeCategoryText(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// ResolveCategory сопоставляет произвольный текст с типом плательщика.
// Значения по умолчанию нет: нераспознанный ввод — ошибка ErrInvalidCategory.
func ResolveCategory(raw string) (PayerCategory, error) {
	if c, ok := acceptedSpellings[NormalizeCategoryText(raw)]; ok {
		return c, nil
	}
	return CategoryUnknown, &InvalidCategoryError{Input: raw}
}

// MonthlyRate возвращает ставку досрочной выплаты за месяц
func (c PayerCategory) MonthlyRate() float64 {
	switch c {
	case Individual:
		return IndividualMonthlyRate
	case LegalEntity:
		return LegalEntityMonthlyRate
	default:
		return 0
	}
}

func (c PayerCategory) String() string {
	switch c {
	case Individual:
		return "fisica"
	case LegalEntity:
		return "juridica"
	default:
		return "unknown"
	}
}

func (c PayerCategory) MarshalJSON() ([]byte, error) {
	if c == CategoryUnknown {
		return []byte(`""`), nil
	}
	return json.Marshal(c.String())
}

func (c *PayerCategory) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*c = CategoryUnknown
		return nil
	}
	parsed, err := ResolveCategory(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
