package intent

// Action describes the single thing gitie will do for an invocation.
type Action string

const (
	// ActionPassthrough runs git unchanged. No AI involvement.
	ActionPassthrough Action = "passthrough"
	// ActionCommitMessage generates a commit message from the staged diff.
	ActionCommitMessage Action = "commit_message"
	// ActionExplainHelp explains git's own help text for the command.
	ActionExplainHelp Action = "explain_help"
	// ActionExplainCommand explains the command line itself.
	ActionExplainCommand Action = "explain_command"
)

// Resolved is the classification of one invocation: exactly one action plus
// the argument list that action must act on. Args never contains the
// activation flag (except on the passthrough row, where by construction the
// flag was never present) and preserves the original token order.
type Resolved struct {
	Action     Action
	Subcommand string
	Args       []string
}

// Subcommands that reinterpret the activation flag as a private feature
// instead of a request for a global explanation.
var ownsActivation = map[string]bool{
	"commit": true,
}

// Resolve maps a scan to exactly one action. The cases are a precedence
// table, first match wins:
//
//  1. no activation occurrence        -> passthrough, args untouched
//  2. subcommand owns the flag        -> the subcommand's private action,
//     regardless of where (or how often) the flag appeared
//  3. activation + help flag          -> explain git's help output
//  4. activation, no help, not owned  -> explain the command line
//
// Every invocation matches a row; unknown subcommands degrade to rows 1 or 4
// and are left for git or the model to complain about.
func Resolve(scan Scan) Resolved {
	switch {
	case !scan.Activated():
		return Resolved{Action: ActionPassthrough, Subcommand: scan.Subcommand, Args: scan.Tokens}
	case ownsActivation[scan.Subcommand]:
		return Resolved{Action: ActionCommitMessage, Subcommand: scan.Subcommand, Args: scan.Residual}
	case scan.HelpRequested:
		return Resolved{Action: ActionExplainHelp, Subcommand: scan.Subcommand, Args: scan.Residual}
	default:
		return Resolved{Action: ActionExplainCommand, Subcommand: scan.Subcommand, Args: scan.Residual}
	}
}
