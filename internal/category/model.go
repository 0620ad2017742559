package category

type Category struct {
	ID   uint
	Name string
}
