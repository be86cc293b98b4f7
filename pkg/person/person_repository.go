package person

import (
	"context"

	"movelist-backend/entities"

	"gorm.io/gorm"
)

type (
	PersonRepository interface {
		AddPerson(ctx context.Context, person *entities.Person) error
		GetPersonByID(ctx context.Context, id string) (*entities.Person, error)
		GetPeople(ctx context.Context) ([]entities.Person, error)
		UpdatePerson(ctx context.Context, person *entities.Person) error
		DeletePerson(ctx context.Context, id string) error
	}

	personRepository struct {
		db *gorm.DB
	}
)

func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) AddPerson(ctx context.Context, person *entities.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *personRepository) GetPersonByID(ctx context.Context, id string) (*entities.Person, error) {
	var person entities.Person
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) GetPeople(ctx context.Context) ([]entities.Person, error) {
	var people []entities.Person
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

func (r *personRepository) UpdatePerson(ctx context.Context, person *entities.Person) error {
	return r.db.WithContext(ctx).Save(person).Error
}

func (r *personRepository) DeletePerson(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Person{}).Error
}
