package venue

type Venue struct {
	ID       int
	Name     string
	Address  string
	Capacity int
}
