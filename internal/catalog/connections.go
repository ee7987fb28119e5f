package catalog

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/cinegraph/cinegraph/internal/driver"
	"github.com/cinegraph/cinegraph/internal/model"
)

// ActorRelation is a movie related through shared cast, with how many actors
// it shares with the source movie.
type ActorRelation struct {
	Movie        model.Movie
	SharedActors int64
}

// BuildConnectionsGraph projects the two relation sets into a node/edge list
// for the force-directed graph. Nodes are deduplicated across both sets;
// when a movie qualifies both by shared actors and by director, the single
// edge carries both labels.
func BuildConnectionsGraph(main model.Movie, byActors []ActorRelation, byDirector []model.Movie) model.ConnectionsGraph {
	graph := model.ConnectionsGraph{
		Nodes: []model.GraphNode{{ID: main.ID, Label: main.Title, Type: model.NodeMain}},
		Edges: []model.GraphEdge{},
	}

	seen := map[string]bool{main.ID: true}
	edgeIdx := map[string]int{}

	for _, rel := range byActors {
		if rel.Movie.ID == "" {
			continue
		}
		if !seen[rel.Movie.ID] {
			seen[rel.Movie.ID] = true
			graph.Nodes = append(graph.Nodes, model.GraphNode{
				ID:    rel.Movie.ID,
				Label: rel.Movie.Title,
				Type:  model.NodeRelated,
			})
		}
		edgeIdx[rel.Movie.ID] = len(graph.Edges)
		graph.Edges = append(graph.Edges, model.GraphEdge{
			Source: main.ID,
			Target: rel.Movie.ID,
			Label:  fmt.Sprintf("%d shared actors", rel.SharedActors),
		})
	}

	for _, movie := range byDirector {
		if movie.ID == "" {
			continue
		}
		if !seen[movie.ID] {
			seen[movie.ID] = true
			graph.Nodes = append(graph.Nodes, model.GraphNode{
				ID:    movie.ID,
				Label: movie.Title,
				Type:  model.NodeSameDirector,
			})
		}
		if i, ok := edgeIdx[movie.ID]; ok {
			// Already linked by shared actors; keep both relations visible.
			graph.Edges[i].Label += " · same director"
			continue
		}
		edgeIdx[movie.ID] = len(graph.Edges)
		graph.Edges = append(graph.Edges, model.GraphEdge{
			Source: main.ID,
			Target: movie.ID,
			Label:  "Same director",
		})
	}

	return graph
}

// Connections runs the one-hop traversal around a movie and projects it.
func (s *Service) Connections(ctx context.Context, id string) (*model.ConnectionsGraph, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.MovieConnectionsQuery, map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, ErrNotFound
	}

	rec := result.Records[0]
	main, ok := movieFromRecord(rec, "m")
	if !ok {
		return nil, ErrNotFound
	}

	var byActors []ActorRelation
	if raw, ok := recordValue(rec, "relatedByActors").([]interface{}); ok {
		for _, item := range raw {
			entry, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			node, ok := entry["movie"].(neo4j.Node)
			if !ok {
				continue
			}
			byActors = append(byActors, ActorRelation{
				Movie:        movieFromProps(node.Props),
				SharedActors: asInt64(entry["sharedActors"]),
			})
		}
	}

	var byDirector []model.Movie
	if raw, ok := recordValue(rec, "relatedByDirector").([]interface{}); ok {
		for _, item := range raw {
			if node, ok := item.(neo4j.Node); ok {
				byDirector = append(byDirector, movieFromProps(node.Props))
			}
		}
	}

	graph := BuildConnectionsGraph(main, byActors, byDirector)
	return &graph, nil
}
