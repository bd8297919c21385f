package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgardchm/pokedex-backend/models"
	"github.com/edgardchm/pokedex-backend/repository"
)

type event struct {
	kind    string
	pokemon models.Pokemon
	id      int
}

// recordingNotifier captures broadcasts in the order the write path
// fires them.
type recordingNotifier struct {
	mu     sync.Mutex
	events []event
}

func (n *recordingNotifier) PokemonCreated(p models.Pokemon) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event{kind: "created", pokemon: p})
}

func (n *recordingNotifier) PokemonUpdated(p models.Pokemon) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event{kind: "updated", pokemon: p})
}

func (n *recordingNotifier) PokemonDeleted(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event{kind: "deleted", id: id})
}

func (n *recordingNotifier) all() []event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]event{}, n.events...)
}

func newTestPokemonService() (*PokemonService, *TypeService, *recordingNotifier) {
	typeStore := repository.NewMemoryTypeStore()
	pokemonStore := repository.NewMemoryPokemonStore()
	typeService := NewTypeService(typeStore)
	reconciler := NewTypeReconciler(typeService, typeStore)
	notifier := &recordingNotifier{}
	return NewPokemonService(pokemonStore, reconciler, notifier), typeService, notifier
}

func pikachuInput() models.CreatePokemonInput {
	return models.CreatePokemonInput{
		Name:           "Pikachu",
		Height:         4,
		Weight:         60,
		BaseExperience: 112,
		SpriteURL:      "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/25.png",
		TypeNames:      []string{"electric"},
	}
}

func TestPokemonService_CreateResolvesTypesAndBroadcasts(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := newTestPokemonService()

	saved, err := svc.Create(ctx, pikachuInput())
	require.NoError(t, err)

	assert.Greater(t, saved.ID, 0)
	assert.False(t, saved.CreatedAt.IsZero())
	require.Len(t, saved.Types, 1)
	assert.Equal(t, "electric", saved.Types[0].Name)

	events := notifier.all()
	require.Len(t, events, 1)
	assert.Equal(t, "created", events[0].kind)
	assert.Equal(t, saved, events[0].pokemon)
}

func TestPokemonService_CreateWithoutTypes(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestPokemonService()

	input := pikachuInput()
	input.TypeNames = nil

	saved, err := svc.Create(ctx, input)
	require.NoError(t, err)
	assert.NotNil(t, saved.Types)
	assert.Empty(t, saved.Types)
}

func TestPokemonService_UpdateEmptyListClearsTypes(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := newTestPokemonService()

	input := pikachuInput()
	input.TypeNames = []string{"electric", "fairy", "steel"}
	saved, err := svc.Create(ctx, input)
	require.NoError(t, err)
	require.Len(t, saved.Types, 3)

	// Absent lists leave the type set untouched.
	name := "Raichu"
	updated, err := svc.Update(ctx, saved.ID, models.UpdatePokemonInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Raichu", updated.Name)
	assert.Len(t, updated.Types, 3)

	// A present-but-empty list is a full replace with nothing.
	empty := []string{}
	updated, err = svc.Update(ctx, saved.ID, models.UpdatePokemonInput{TypeNames: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Types)

	got, err := svc.FindOne(ctx, saved.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Types)

	events := notifier.all()
	require.Len(t, events, 3)
	assert.Equal(t, "created", events[0].kind)
	assert.Equal(t, "updated", events[1].kind)
	assert.Equal(t, "updated", events[2].kind)
}

func TestPokemonService_UpdateDropsUnknownTypeIDs(t *testing.T) {
	ctx := context.Background()
	svc, types, notifier := newTestPokemonService()

	dark, err := types.FindOrCreate(ctx, "dark")
	require.NoError(t, err)

	saved, err := svc.Create(ctx, pikachuInput())
	require.NoError(t, err)

	ids := []int{dark.ID, dark.ID + 99}
	updated, err := svc.Update(ctx, saved.ID, models.UpdatePokemonInput{TypeIDs: &ids})
	require.NoError(t, err)
	require.Len(t, updated.Types, 1)
	assert.Equal(t, dark.ID, updated.Types[0].ID)

	var updatedEvents int
	for _, e := range notifier.all() {
		if e.kind == "updated" {
			updatedEvents++
		}
	}
	assert.Equal(t, 1, updatedEvents)
}

func TestPokemonService_PartialUpdateKeepsOmittedScalars(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestPokemonService()

	saved, err := svc.Create(ctx, pikachuInput())
	require.NoError(t, err)

	height := 8.5
	updated, err := svc.Update(ctx, saved.ID, models.UpdatePokemonInput{Height: &height})
	require.NoError(t, err)

	assert.Equal(t, 8.5, updated.Height)
	assert.Equal(t, saved.Name, updated.Name)
	assert.Equal(t, saved.Weight, updated.Weight)
	assert.Equal(t, saved.BaseExperience, updated.BaseExperience)
	assert.Equal(t, saved.SpriteURL, updated.SpriteURL)
	assert.Equal(t, saved.CreatedAt, updated.CreatedAt)
	assert.Equal(t, saved.Types, updated.Types)
}

func TestPokemonService_DeleteLeavesTypeRows(t *testing.T) {
	ctx := context.Background()
	svc, types, notifier := newTestPokemonService()

	input := pikachuInput()
	input.TypeNames = []string{"electric", "flying"}
	saved, err := svc.Create(ctx, input)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, saved.ID))

	_, err = svc.FindOne(ctx, saved.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	remaining, err := types.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)

	events := notifier.all()
	require.Len(t, events, 2)
	assert.Equal(t, "deleted", events[1].kind)
	assert.Equal(t, saved.ID, events[1].id)
}

func TestPokemonService_NotFoundProducesNoBroadcast(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := newTestPokemonService()

	_, err := svc.FindOne(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Update(ctx, 99, models.UpdatePokemonInput{})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.Delete(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.Empty(t, notifier.all())
}

func TestPokemonService_ConcurrentUpdatesBroadcastInCommitOrder(t *testing.T) {
	ctx := context.Background()
	svc, _, notifier := newTestPokemonService()

	saved, err := svc.Create(ctx, pikachuInput())
	require.NoError(t, err)

	const writers = 10
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			height := float64(i)
			_, err := svc.Update(ctx, saved.ID, models.UpdatePokemonInput{Height: &height})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	events := notifier.all()
	require.Len(t, events, writers+1)

	// The last broadcast for the id must carry the state that actually
	// won, i.e. what a fresh read sees.
	final, err := svc.FindOne(ctx, saved.ID)
	require.NoError(t, err)
	last := events[len(events)-1]
	assert.Equal(t, "updated", last.kind)
	assert.Equal(t, final.Height, last.pokemon.Height)
}
