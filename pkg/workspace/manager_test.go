package workspace_test

import (
	"context"
	"errors"
	"testing"

	"github.com/openburn/motordoc/pkg/adapters/memory"
	"github.com/openburn/motordoc/pkg/domain"
	"github.com/openburn/motordoc/pkg/library"
	"github.com/openburn/motordoc/pkg/ports"
	"github.com/openburn/motordoc/pkg/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edit(name string) *domain.Design {
	d := domain.NewDesign()
	d.Config["name"] = name
	return d
}

// countingStore wraps a DesignStore and counts persist attempts.
type countingStore struct {
	ports.DesignStore
	saves int
}

func (s *countingStore) Save(ctx context.Context, path string, design *domain.Design) error {
	s.saves++
	return s.DesignStore.Save(ctx, path, design)
}

// failingStore fails every save and load.
type failingStore struct{}

func (failingStore) Save(ctx context.Context, path string, design *domain.Design) error {
	return errors.New("disk full")
}

func (failingStore) Load(ctx context.Context, path string) (*domain.Design, error) {
	return nil, errors.New("read error")
}

// countingPrompter returns a fixed choice and counts consultations.
type countingPrompter struct {
	choice ports.Choice
	calls  int
}

func (p *countingPrompter) ConfirmDiscard(ctx context.Context) (ports.Choice, error) {
	p.calls++
	return p.choice, nil
}

func TestManager_FreshDocumentIsClean(t *testing.T) {
	m := workspace.NewManager(memory.NewStore())

	assert.False(t, m.IsDirty())
	assert.Empty(t, m.Path())
	assert.False(t, m.CanUndo())
	assert.False(t, m.CanRedo())
}

func TestManager_AddVersionMakesDirty(t *testing.T) {
	m := workspace.NewManager(memory.NewStore())

	m.AddVersion(edit("v1"))

	assert.True(t, m.IsDirty())
	assert.True(t, m.CanUndo())
	assert.Equal(t, "v1", m.Current().Config["name"])
}

func TestManager_SaveWithoutPath(t *testing.T) {
	m := workspace.NewManager(memory.NewStore())
	m.AddVersion(edit("v1"))

	assert.ErrorIs(t, m.Save(context.Background()), domain.ErrNoPath)
	assert.True(t, m.IsDirty())
}

func TestManager_SaveAsClearsDirty(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	m := workspace.NewManager(store)
	m.AddVersion(edit("v1"))

	require.NoError(t, m.SaveAs(ctx, "motor.ric"))

	assert.False(t, m.IsDirty())
	assert.Equal(t, "motor.ric", m.Path())

	// Subsequent Save goes to the recorded path.
	m.AddVersion(edit("v2"))
	require.True(t, m.IsDirty())
	require.NoError(t, m.Save(ctx))
	assert.False(t, m.IsDirty())

	loaded, err := store.Load(ctx, "motor.ric")
	require.NoError(t, err)
	assert.Equal(t, "v2", loaded.Config["name"])
}

func TestManager_FailedSaveLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	m := workspace.NewManager(failingStore{})
	m.AddVersion(edit("v1"))
	before := m.State()

	err := m.SaveAs(ctx, "motor.ric")
	require.Error(t, err)

	assert.Equal(t, before, m.State())
	assert.True(t, m.IsDirty())
	assert.Empty(t, m.Path(), "a failed SaveAs must not record the path")
}

func TestManager_UndoRedoRestoresSnapshot(t *testing.T) {
	m := workspace.NewManager(memory.NewStore())
	m.AddVersion(edit("v1"))
	m.AddVersion(edit("v2"))

	require.NoError(t, m.Undo())
	assert.Equal(t, "v1", m.Current().Config["name"])

	require.NoError(t, m.Redo())
	assert.Equal(t, "v2", m.Current().Config["name"])

	assert.ErrorIs(t, m.Redo(), domain.ErrCannotRedo)
}

func TestManager_UndoAffectsDirtyState(t *testing.T) {
	ctx := context.Background()
	m := workspace.NewManager(memory.NewStore())
	m.AddVersion(edit("v1"))
	require.NoError(t, m.SaveAs(ctx, "motor.ric"))
	require.False(t, m.IsDirty())

	// Moving the cursor away from the saved marker makes the document
	// dirty; moving back makes it clean again.
	require.NoError(t, m.Undo())
	assert.True(t, m.IsDirty())
	require.NoError(t, m.Redo())
	assert.False(t, m.IsDirty())
}

func TestManager_NewWhenCleanProceedsWithoutPrompt(t *testing.T) {
	prompter := &countingPrompter{choice: ports.ChoiceCancel}
	m := workspace.NewManager(memory.NewStore(), workspace.WithPrompter(prompter))

	require.NoError(t, m.New(context.Background()))
	assert.Zero(t, prompter.calls, "guard must not be consulted for a clean document")
}

func TestManager_NewDirtyWithoutPrompterIsRefused(t *testing.T) {
	m := workspace.NewManager(memory.NewStore())
	m.AddVersion(edit("v1"))

	assert.ErrorIs(t, m.New(context.Background()), domain.ErrCancelled)
	assert.Equal(t, "v1", m.Current().Config["name"])
}

func TestManager_NewDirtyDiscard(t *testing.T) {
	store := &countingStore{DesignStore: memory.NewStore()}
	prompter := &countingPrompter{choice: ports.ChoiceDiscard}
	m := workspace.NewManager(store, workspace.WithPrompter(prompter))
	m.AddVersion(edit("v1"))

	require.NoError(t, m.New(context.Background()))

	assert.Equal(t, 1, prompter.calls, "guard is evaluated exactly once")
	assert.Zero(t, store.saves, "discard must not issue a persist call")

	st := m.State()
	assert.Equal(t, 1, st.Versions, "history resets to a single default snapshot")
	assert.False(t, st.Dirty)
	assert.Empty(t, st.Path)
}

func TestManager_NewDirtyCancel(t *testing.T) {
	prompter := &countingPrompter{choice: ports.ChoiceCancel}
	m := workspace.NewManager(memory.NewStore(), workspace.WithPrompter(prompter))
	m.AddVersion(edit("v1"))
	before := m.State()

	assert.ErrorIs(t, m.New(context.Background()), domain.ErrCancelled)
	assert.Equal(t, before, m.State())
	assert.Equal(t, "v1", m.Current().Config["name"])
}

func TestManager_NewDirtySaveSucceeds(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	prompter := &countingPrompter{choice: ports.ChoiceSave}
	m := workspace.NewManager(store, workspace.WithPrompter(prompter))

	m.AddVersion(edit("v1"))
	require.NoError(t, m.SaveAs(ctx, "motor.ric"))
	m.AddVersion(edit("v2"))
	require.True(t, m.IsDirty())

	require.NoError(t, m.New(ctx))

	// The edit was persisted before the document was replaced.
	saved, err := store.Load(ctx, "motor.ric")
	require.NoError(t, err)
	assert.Equal(t, "v2", saved.Config["name"])
	assert.Equal(t, 1, m.State().Versions)
}

func TestManager_NewDirtySaveFailsAborts(t *testing.T) {
	ctx := context.Background()
	prompter := &countingPrompter{choice: ports.ChoiceSave}
	m := workspace.NewManager(failingStore{}, workspace.WithPrompter(prompter))
	m.AddVersion(edit("v1"))
	before := m.State()

	err := m.New(ctx)
	assert.ErrorIs(t, err, domain.ErrGuardAborted)

	// The destructive operation did not proceed; nothing was discarded.
	assert.Equal(t, before, m.State())
	assert.Equal(t, "v1", m.Current().Config["name"])
	assert.Equal(t, 1, prompter.calls)
}

func TestManager_OpenResetsWholesale(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Save(ctx, "saved.ric", edit("from disk")))

	m := workspace.NewManager(store)
	require.NoError(t, m.Open(ctx, "saved.ric"))

	st := m.State()
	assert.Equal(t, "saved.ric", st.Path)
	assert.False(t, st.Dirty)
	assert.Equal(t, 1, st.Versions)
	assert.Equal(t, "from disk", m.Current().Config["name"])
}

func TestManager_OpenFailureKeepsCurrentDocument(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	m := workspace.NewManager(store)
	m.AddVersion(edit("work in progress"))
	require.NoError(t, m.SaveAs(ctx, "wip.ric"))
	before := m.State()

	err := m.Open(ctx, "missing.ric")
	require.ErrorIs(t, err, domain.ErrDesignNotFound)

	assert.Equal(t, before, m.State())
	assert.Equal(t, "work in progress", m.Current().Config["name"])
}

func TestManager_OpenReconcilesPropellant(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	conflicting := edit("loaded")
	conflicting.Propellant = &domain.Propellant{
		Name:       "A",
		Properties: map[string]float64{"burnRate": 2},
	}
	require.NoError(t, store.Save(ctx, "conflict.ric", conflicting))

	libStore := memory.NewLibraryStore(domain.Propellant{
		Name:       "A",
		Properties: map[string]float64{"burnRate": 1},
	})
	lib := library.NewManager(libStore)

	m := workspace.NewManager(store, workspace.WithLibrary(lib))
	require.NoError(t, m.Open(ctx, "conflict.ric"))

	// The loaded document's propellant was renamed, the library gained
	// exactly one entry, and the original library entry is intact.
	assert.Equal(t, "A (1)", m.Current().Propellant.Name)
	names, err := lib.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A (1)"}, names)

	// The rename lives only in memory until the user re-saves.
	onDisk, err := store.Load(ctx, "conflict.ric")
	require.NoError(t, err)
	assert.Equal(t, "A", onDisk.Propellant.Name)
}

func TestManager_StartFromAdoptsWithoutGuard(t *testing.T) {
	m := workspace.NewManager(memory.NewStore())
	m.AddVersion(edit("dirty"))

	require.NoError(t, m.StartFrom(context.Background(), edit("imported"), ""))
	assert.Equal(t, "imported", m.Current().Config["name"])
	assert.False(t, m.IsDirty())
}

func TestManager_ChangeNotifications(t *testing.T) {
	ctx := context.Background()
	var events []domain.ChangeEvent
	m := workspace.NewManager(memory.NewStore(), workspace.WithListener(func(e domain.ChangeEvent) {
		events = append(events, e)
	}))

	m.AddVersion(edit("v1"))
	require.NoError(t, m.SaveAs(ctx, "motor.ric"))
	require.NoError(t, m.Undo())
	require.NoError(t, m.Redo())

	require.Len(t, events, 4)
	assert.Equal(t, domain.ChangeEvent{Path: "", Saved: false}, events[0])
	assert.Equal(t, domain.ChangeEvent{Path: "motor.ric", Saved: true}, events[1])
	assert.Equal(t, domain.ChangeEvent{Path: "motor.ric", Saved: false}, events[2])
	assert.Equal(t, domain.ChangeEvent{Path: "motor.ric", Saved: true}, events[3])
}

func TestManager_DuplicateCommitDoesNotNotify(t *testing.T) {
	var events int
	m := workspace.NewManager(memory.NewStore(), workspace.WithListener(func(domain.ChangeEvent) {
		events++
	}))

	m.AddVersion(edit("v1"))
	m.AddVersion(edit("v1"))

	assert.Equal(t, 1, events)
	assert.Equal(t, 2, m.State().Versions)
}

func TestManager_OverrideCurrentKeepsShape(t *testing.T) {
	m := workspace.NewManager(memory.NewStore())
	m.AddVersion(edit("v1"))
	st := m.State()

	m.OverrideCurrent(edit("v1-amended"))

	assert.Equal(t, st.Versions, m.State().Versions)
	assert.Equal(t, st.Cursor, m.State().Cursor)
	assert.Equal(t, "v1-amended", m.Current().Config["name"])
}

func TestManager_WithDefaultDesign(t *testing.T) {
	def := edit("defaults")
	def.Config["timestep"] = 0.03

	m := workspace.NewManager(memory.NewStore(), workspace.WithDefaultDesign(def))
	assert.Equal(t, 0.03, m.Current().Config["timestep"])

	m.AddVersion(edit("other"))
	require.NoError(t, m.StartFrom(context.Background(), def, ""))
	assert.Equal(t, "defaults", m.Current().Config["name"])
}
