package models

const (
	CategoryAppetizer = "Appetizer"
	CategoryMain      = "Main"
	CategoryDessert   = "Dessert"
	CategoryBeverage  = "Beverage"
)

var Categories = []string{
	CategoryAppetizer,
	CategoryMain,
	CategoryDessert,
	CategoryBeverage,
}
