package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/killer-backend/internal/apperror"
	"github.com/rocketscienceinc/killer-backend/internal/entity"
)

const characterKeyPrefix = "character:"

// CharacterRepository is the character registry. The catalog is fixed; claims live in redis
// as one key per character holding the owner's connection ID.
type CharacterRepository interface {
	FindByName(ctx context.Context, name string) (*entity.Character, error)
	List(ctx context.Context) ([]entity.Character, error)
	Use(ctx context.Context, name, connectionID string) error
	Release(ctx context.Context, name string) error
	Reset(ctx context.Context) error
}

type dbCharacter struct {
	client  *redis.Client
	catalog []string
}

func NewCharacterRepository(client *redis.Client, catalog []string) CharacterRepository {
	names := make([]string, len(catalog))
	copy(names, catalog)

	return &dbCharacter{
		client:  client,
		catalog: names,
	}
}

func (that *dbCharacter) FindByName(ctx context.Context, name string) (*entity.Character, error) {
	if !that.inCatalog(name) {
		return nil, apperror.ErrCharacterNotFound
	}

	owner, err := that.client.Get(ctx, characterKeyPrefix+name).Result()
	if errors.Is(err, redis.Nil) {
		return &entity.Character{Name: name}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	return &entity.Character{Name: name, InUse: true, OwnerConnectionID: owner}, nil
}

func (that *dbCharacter) List(ctx context.Context) ([]entity.Character, error) {
	if len(that.catalog) == 0 {
		return []entity.Character{}, nil
	}

	owners, err := that.client.MGet(ctx, that.keys()...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}

	characters := make([]entity.Character, 0, len(that.catalog))
	for i, name := range that.catalog {
		character := entity.Character{Name: name}
		if owner, ok := owners[i].(string); ok {
			character.InUse = true
			character.OwnerConnectionID = owner
		}

		characters = append(characters, character)
	}

	return characters, nil
}

// Use claims the character for the connection. It fails if somebody already holds it.
func (that *dbCharacter) Use(ctx context.Context, name, connectionID string) error {
	if !that.inCatalog(name) {
		return apperror.ErrCharacterNotFound
	}

	claimed, err := that.client.SetNX(ctx, characterKeyPrefix+name, connectionID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim character: %w", err)
	}

	if !claimed {
		return apperror.ErrCharacterInUse
	}

	return nil
}

func (that *dbCharacter) Release(ctx context.Context, name string) error {
	if err := that.client.Del(ctx, characterKeyPrefix+name).Err(); err != nil {
		return fmt.Errorf("failed to release character: %w", err)
	}

	return nil
}

func (that *dbCharacter) Reset(ctx context.Context) error {
	if len(that.catalog) == 0 {
		return nil
	}

	if err := that.client.Del(ctx, that.keys()...).Err(); err != nil {
		return fmt.Errorf("failed to reset characters: %w", err)
	}

	return nil
}

func (that *dbCharacter) inCatalog(name string) bool {
	for _, n := range that.catalog {
		if n == name {
			return true
		}
	}

	return false
}

func (that *dbCharacter) keys() []string {
	keys := make([]string, 0, len(that.catalog))
	for _, name := range that.catalog {
		keys = append(keys, characterKeyPrefix+name)
	}

	return keys
}
