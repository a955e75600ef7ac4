package category

type Category struct {
	ID   int
	Name string
}
