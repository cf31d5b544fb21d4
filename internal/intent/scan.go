package intent

// ActivationFlag is the token that opts a git invocation into AI handling.
// Presence anywhere in the argument vector is the signal; position is not.
const ActivationFlag = "--ai"

var helpFlags = map[string]bool{
	"-h":     true,
	"--help": true,
}

// Scan is a flat view of one raw invocation: the original tokens, where the
// activation flag occurs, the subcommand candidate, and the residual argument
// list with every activation occurrence removed.
type Scan struct {
	Tokens              []string
	ActivationPositions []int
	Subcommand          string
	HelpRequested       bool
	Residual            []string
}

// NewScan tokenizes an argument vector. It never fails: an empty vector
// yields an empty scan. The subcommand candidate is the first token that is
// not the activation flag; help flags count only after that position, since
// the leading residual token is reserved for the subcommand name.
func NewScan(args []string) Scan {
	scan := Scan{
		Tokens:   args,
		Residual: make([]string, 0, len(args)),
	}
	for i, token := range args {
		if token == ActivationFlag {
			scan.ActivationPositions = append(scan.ActivationPositions, i)
			continue
		}
		scan.Residual = append(scan.Residual, token)
	}
	if len(scan.Residual) == 0 {
		return scan
	}
	scan.Subcommand = scan.Residual[0]
	for _, token := range scan.Residual[1:] {
		if helpFlags[token] {
			scan.HelpRequested = true
			break
		}
	}
	return scan
}

// Activated reports whether the activation flag occurred at least once.
func (s Scan) Activated() bool {
	return len(s.ActivationPositions) > 0
}
