package person

import (
	"context"
	"errors"
	"strings"

	"movelist-backend/domain"
	"movelist-backend/entities"
	"movelist-backend/pkg/watch"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PersonService interface {
		AddPerson(ctx context.Context, req domain.AddPersonRequest) (domain.PersonResponse, error)
		GetPeople(ctx context.Context) ([]domain.PersonResponse, error)
		UpdatePerson(ctx context.Context, id string, req domain.UpdatePersonRequest) error
		DeletePerson(ctx context.Context, id string) error
	}

	personService struct {
		personRepository PersonRepository
		hub              *watch.Hub
	}
)

func NewPersonService(personRepository PersonRepository, hub *watch.Hub) PersonService {
	return &personService{
		personRepository: personRepository,
		hub:              hub,
	}
}

func toPersonResponse(person *entities.Person) domain.PersonResponse {
	return domain.PersonResponse{
		ID:      person.ID.String(),
		Name:    person.Name,
		IsPayer: person.IsPayer,
	}
}

func (s *personService) publish(ctx context.Context) {
	people, err := s.personRepository.GetPeople(ctx)
	if err != nil {
		return
	}
	responses := make([]domain.PersonResponse, 0, len(people))
	for i := range people {
		responses = append(responses, toPersonResponse(&people[i]))
	}
	s.hub.Publish(watch.CollectionPeople, responses)
}

func (s *personService) AddPerson(ctx context.Context, req domain.AddPersonRequest) (domain.PersonResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.PersonResponse{}, domain.ErrEmptyPersonName
	}

	person := &entities.Person{
		ID:      uuid.New(),
		Name:    name,
		IsPayer: req.IsPayer,
	}

	if err := s.personRepository.AddPerson(ctx, person); err != nil {
		return domain.PersonResponse{}, err
	}

	s.publish(ctx)
	return toPersonResponse(person), nil
}

func (s *personService) GetPeople(ctx context.Context) ([]domain.PersonResponse, error) {
	people, err := s.personRepository.GetPeople(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.PersonResponse, 0, len(people))
	for i := range people {
		responses = append(responses, toPersonResponse(&people[i]))
	}
	return responses, nil
}

func (s *personService) UpdatePerson(ctx context.Context, id string, req domain.UpdatePersonRequest) error {
	person, err := s.personRepository.GetPersonByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPersonNotFound
		}
		return err
	}

	if req.Name != "" {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			return domain.ErrEmptyPersonName
		}
		person.Name = name
	}

	if req.IsPayer != nil {
		person.IsPayer = *req.IsPayer
	}

	if err := s.personRepository.UpdatePerson(ctx, person); err != nil {
		return err
	}

	s.publish(ctx)
	return nil
}

func (s *personService) DeletePerson(ctx context.Context, id string) error {
	if _, err := s.personRepository.GetPersonByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPersonNotFound
		}
		return err
	}

	if err := s.personRepository.DeletePerson(ctx, id); err != nil {
		return err
	}

	s.publish(ctx)
	return nil
}
