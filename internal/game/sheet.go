package game

// Sheet is an ordered list of validated note indices. A Sheet only
// exists fully loaded; failed loads leave nothing behind.
type Sheet struct {
	Name  string
	Notes []int
}
