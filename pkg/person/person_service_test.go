package person

import (
	"context"
	"testing"

	"movelist-backend/domain"
	"movelist-backend/entities"
	"movelist-backend/pkg/watch"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePersonRepo struct {
	people map[string]*entities.Person
	order  []string
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{people: make(map[string]*entities.Person)}
}

func (r *fakePersonRepo) AddPerson(_ context.Context, person *entities.Person) error {
	stored := *person
	r.people[person.ID.String()] = &stored
	r.order = append(r.order, person.ID.String())
	return nil
}

func (r *fakePersonRepo) GetPersonByID(_ context.Context, id string) (*entities.Person, error) {
	person, ok := r.people[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *person
	return &copied, nil
}

func (r *fakePersonRepo) GetPeople(_ context.Context) ([]entities.Person, error) {
	out := make([]entities.Person, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.people[id])
	}
	return out, nil
}

func (r *fakePersonRepo) UpdatePerson(_ context.Context, person *entities.Person) error {
	stored := *person
	r.people[person.ID.String()] = &stored
	return nil
}

func (r *fakePersonRepo) DeletePerson(_ context.Context, id string) error {
	delete(r.people, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func newTestService() (PersonService, *fakePersonRepo) {
	repo := newFakePersonRepo()
	return NewPersonService(repo, watch.NewHub()), repo
}

func TestAddPerson(t *testing.T) {
	service, _ := newTestService()

	res, err := service.AddPerson(context.Background(), domain.AddPersonRequest{
		Name:    "  דנה  ",
		IsPayer: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "דנה", res.Name)
	assert.True(t, res.IsPayer)
	assert.NotEmpty(t, res.ID)
}

func TestAddPersonRejectsBlankName(t *testing.T) {
	service, _ := newTestService()

	_, err := service.AddPerson(context.Background(), domain.AddPersonRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyPersonName)
}

func TestGetPeoplePreservesOrder(t *testing.T) {
	service, _ := newTestService()

	for _, name := range []string{"דנה", "יוסי", "נועה"} {
		_, err := service.AddPerson(context.Background(), domain.AddPersonRequest{Name: name})
		require.NoError(t, err)
	}

	people, err := service.GetPeople(context.Background())
	require.NoError(t, err)
	require.Len(t, people, 3)
	assert.Equal(t, "דנה", people[0].Name)
	assert.Equal(t, "יוסי", people[1].Name)
	assert.Equal(t, "נועה", people[2].Name)
}

func TestUpdatePerson(t *testing.T) {
	service, repo := newTestService()

	res, err := service.AddPerson(context.Background(), domain.AddPersonRequest{Name: "דנה", IsPayer: true})
	require.NoError(t, err)

	notPayer := false
	err = service.UpdatePerson(context.Background(), res.ID, domain.UpdatePersonRequest{
		Name:    "דנה לוי",
		IsPayer: &notPayer,
	})
	require.NoError(t, err)

	stored, err := repo.GetPersonByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, "דנה לוי", stored.Name)
	assert.False(t, stored.IsPayer)
}

func TestUpdatePersonKeepsPayerFlagWhenOmitted(t *testing.T) {
	service, repo := newTestService()

	res, err := service.AddPerson(context.Background(), domain.AddPersonRequest{Name: "דנה", IsPayer: true})
	require.NoError(t, err)

	err = service.UpdatePerson(context.Background(), res.ID, domain.UpdatePersonRequest{Name: "דנה לוי"})
	require.NoError(t, err)

	stored, err := repo.GetPersonByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsPayer)
}

func TestUpdatePersonNotFound(t *testing.T) {
	service, _ := newTestService()

	err := service.UpdatePerson(context.Background(), uuid.New().String(), domain.UpdatePersonRequest{Name: "דנה"})
	assert.ErrorIs(t, err, domain.ErrPersonNotFound)
}

func TestDeletePerson(t *testing.T) {
	service, repo := newTestService()

	res, err := service.AddPerson(context.Background(), domain.AddPersonRequest{Name: "דנה"})
	require.NoError(t, err)

	require.NoError(t, service.DeletePerson(context.Background(), res.ID))

	_, err = repo.GetPersonByID(context.Background(), res.ID)
	assert.Error(t, err)
}

func TestDeletePersonNotFound(t *testing.T) {
	service, _ := newTestService()

	err := service.DeletePerson(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrPersonNotFound)
}
