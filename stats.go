package arraytable

type Stats struct {
	Size      int
	Capacity  int
	Free      int
	Destroyed bool
}
