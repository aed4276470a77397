package ports

import "context"

// Choice is the user's decision at the unsaved-changes gate.
type Choice int

const (
	// ChoiceCancel aborts the destructive operation; nothing changes.
	ChoiceCancel Choice = iota

	// ChoiceSave persists the current design first; the operation only
	// proceeds if that save succeeds.
	ChoiceSave

	// ChoiceDiscard proceeds without persisting.
	ChoiceDiscard
)

// String returns the choice name for logs and prompts.
func (c Choice) String() string {
	switch c {
	case ChoiceSave:
		return "save"
	case ChoiceDiscard:
		return "discard"
	default:
		return "cancel"
	}
}

// Prompter asks the user what to do with unsaved changes before a
// destructive operation (new, open). It is consulted exactly once per
// destructive call, and only when the document is dirty.
type Prompter interface {
	ConfirmDiscard(ctx context.Context) (Choice, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(ctx context.Context) (Choice, error)

// ConfirmDiscard implements Prompter.
func (f PrompterFunc) ConfirmDiscard(ctx context.Context) (Choice, error) {
	return f(ctx)
}

// StaticPrompter always answers with a fixed choice. Useful for
// headless surfaces (HTTP, tests) where no user can be asked.
func StaticPrompter(c Choice) Prompter {
	return PrompterFunc(func(context.Context) (Choice, error) {
		return c, nil
	})
}
