package domain

// Outcome of running one heuristic on a problem.
type HeuristicResult struct {
	Heuristic Heuristic
	Tour      Tour
	Length    int
}

// Represents the processing of a single problem file.
// Err is set when the file could not be parsed or evaluated;
// Problem and Results are then left empty.
type Evaluation struct {
	Path    string
	Problem *Problem
	Results []HeuristicResult
	Err     error
}

// Aggregate tour-length statistics for one heuristic across a batch.
type HeuristicSummary struct {
	Heuristic Heuristic
	Files     int
	Mean      float64
	Median    float64
	Min       float64
	Max       float64
}
