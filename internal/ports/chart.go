package ports

import "herosheet/internal/domain"

// ChartRenderer plots one value per axis, in the order given
type ChartRenderer interface {
	Render(title string, axes []domain.Category, values []int) string
}
