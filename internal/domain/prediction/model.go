package prediction

// Row is one team's estimated championship probability in percent, rounded
// to one decimal. Rows are computed independently per team and are not
// renormalized, so the sum over all teams only approximates 100.
type Row struct {
	TeamID      string
	TeamName    string
	Probability float64
}
