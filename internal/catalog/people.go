package catalog

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/cinegraph/cinegraph/internal/driver"
	"github.com/cinegraph/cinegraph/internal/model"
)

// EntityKind identifies one of the three name-keyed node types managed by
// the admin screens.
type EntityKind struct {
	Label        string
	Relationship string
}

var (
	Actors    = EntityKind{Label: "Actor", Relationship: "HAS_ACTOR"}
	Directors = EntityKind{Label: "Director", Relationship: "DIRECTED_BY"}
	Genres    = EntityKind{Label: "Genre", Relationship: "IN_GENRE"}
)

// ListNamed returns all nodes of the kind with how many movies point at each.
func (s *Service) ListNamed(ctx context.Context, kind EntityKind) ([]model.NamedEntity, error) {
	query := fmt.Sprintf(driver.NamedEntityListQueryTmpl, kind.Label, kind.Relationship)
	result, err := s.Driver.ExecuteQuery(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	entities := make([]model.NamedEntity, 0, len(result.Records))
	for _, rec := range result.Records {
		node, ok := recordValue(rec, "n").(neo4j.Node)
		if !ok {
			continue
		}
		entities = append(entities, model.NamedEntity{
			Name:       asString(node.Props["name"]),
			MovieCount: asInt64(recordValue(rec, "movieCount")),
		})
	}
	return entities, nil
}

func (s *Service) CreateNamed(ctx context.Context, kind EntityKind, name string) (*model.NamedEntity, error) {
	query := fmt.Sprintf(driver.NamedEntityCreateQueryTmpl, kind.Label)
	result, err := s.Driver.ExecuteQuery(ctx, query, map[string]interface{}{"name": name})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, fmt.Errorf("%s %q was not created", kind.Label, name)
	}
	return &model.NamedEntity{Name: name}, nil
}

func (s *Service) RenameNamed(ctx context.Context, kind EntityKind, name, newName string) (*model.NamedEntity, error) {
	query := fmt.Sprintf(driver.NamedEntityRenameQueryTmpl, kind.Label)
	result, err := s.Driver.ExecuteQuery(ctx, query, map[string]interface{}{
		"name": name, "newName": newName,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, ErrNotFound
	}
	return &model.NamedEntity{Name: newName}, nil
}

// DeleteNamed detach-deletes the node, removing all edges into it. Movies
// that referenced it simply lose the relation.
func (s *Service) DeleteNamed(ctx context.Context, kind EntityKind, name string) error {
	query := fmt.Sprintf(driver.NamedEntityDeleteQueryTmpl, kind.Label)
	if _, err := s.Driver.ExecuteQuery(ctx, query, map[string]interface{}{"name": name}); err != nil {
		return err
	}
	s.log.Info("entity deleted", zap.String("label", kind.Label), zap.String("name", name))
	return nil
}
