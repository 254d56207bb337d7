package cats

import (
	"context"
	"fmt"
	"slices"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dbmanager/internal/model"
	"dbmanager/internal/repository"
)

// memStore keeps cats in insertion order and mimics the MongoDB update semantics.
type memStore struct {
	cats []model.Cat
	err  error
}

var _ Store = (*memStore)(nil)

func (m *memStore) find(name string) int {
	return slices.IndexFunc(m.cats, func(c model.Cat) bool { return c.Name == name })
}

func (m *memStore) Create(_ context.Context, name string, age int, features []string) (primitive.ObjectID, error) {
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	id := primitive.NewObjectID()
	m.cats = append(m.cats, model.Cat{ID: id, Name: name, Age: age, Features: features})
	return id, nil
}

func (m *memStore) ListAll(context.Context) ([]model.Cat, error) {
	return slices.Clone(m.cats), m.err
}

func (m *memStore) FindByName(_ context.Context, name string) (*model.Cat, error) {
	i := m.find(name)
	if i < 0 {
		return nil, fmt.Errorf("find cat %q: %w", name, repository.ErrNotFound)
	}
	cat := m.cats[i]
	return &cat, nil
}

func (m *memStore) UpdateAge(_ context.Context, name string, age int) (bool, error) {
	i := m.find(name)
	if i < 0 || m.cats[i].Age == age {
		return false, nil
	}
	m.cats[i].Age = age
	return true, nil
}

func (m *memStore) AddFeature(_ context.Context, name, feature string) (bool, error) {
	i := m.find(name)
	if i < 0 || slices.Contains(m.cats[i].Features, feature) {
		return false, nil
	}
	m.cats[i].Features = append(m.cats[i].Features, feature)
	return true, nil
}

func (m *memStore) DeleteByName(_ context.Context, name string) (bool, error) {
	i := m.find(name)
	if i < 0 {
		return false, nil
	}
	m.cats = slices.Delete(m.cats, i, i+1)
	return true, nil
}

func (m *memStore) DeleteAll(context.Context) (int64, error) {
	n := int64(len(m.cats))
	m.cats = nil
	return n, nil
}
