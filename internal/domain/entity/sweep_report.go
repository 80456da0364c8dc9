package entity

// SweepReport summarizes one pass of the orphan sweeper.
type SweepReport struct {
	Scanned    int
	Referenced int
	Skipped    int
	Removed    int
	Failed     int
}
