package entity

type BottleCategory string

const (
	CategoryVodka     BottleCategory = "VODKA"
	CategoryChampagne BottleCategory = "CHAMPAGNE"
	CategoryTequila   BottleCategory = "TEQUILA"
	CategoryWhiskey   BottleCategory = "WHISKEY"
	CategoryGin       BottleCategory = "GIN"
	CategoryRum       BottleCategory = "RUM"
)

// Bottle is a bottle-service menu item. Price is in currency minor units
// and always positive.
type Bottle struct {
	ID       string
	Name     string
	Category BottleCategory
	Price    int64
}
