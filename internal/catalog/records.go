package catalog

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/cinegraph/cinegraph/internal/model"
)

// Conversion helpers for values coming back from the driver. Numeric
// properties arrive as int64 or float64 depending on how they were written,
// so both are tolerated everywhere.

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	case int:
		return int64(n)
	}
	return 0
}

func asFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func asTime(v interface{}) time.Time {
	if t, ok := v.(time.Time); ok {
		return t
	}
	return time.Time{}
}

func asStringList(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func recordValue(rec *neo4j.Record, key string) interface{} {
	v, _ := rec.Get(key)
	return v
}

func movieFromProps(props map[string]interface{}) model.Movie {
	return model.Movie{
		ID:             asString(props["id"]),
		Title:          asString(props["title"]),
		Plot:           asString(props["plot"]),
		ReleaseYear:    int(asInt64(props["releaseYear"])),
		Runtime:        int(asInt64(props["runtime"])),
		Rating:         asFloat64(props["rating"]),
		Poster:         asString(props["poster"]),
		Backdrop:       asString(props["backdrop"]),
		AnonymousViews: asInt64(props["anonymousViews"]),
	}
}

func movieFromRecord(rec *neo4j.Record, key string) (model.Movie, bool) {
	node, ok := recordValue(rec, key).(neo4j.Node)
	if !ok {
		return model.Movie{}, false
	}
	return movieFromProps(node.Props), true
}

func userFromProps(props map[string]interface{}) model.User {
	role := asString(props["role"])
	if role == "" {
		role = model.RoleUser
	}
	return model.User{
		ID:           asString(props["id"]),
		Username:     asString(props["username"]),
		Email:        asString(props["email"]),
		PasswordHash: asString(props["password"]),
		Role:         role,
		CreatedAt:    asTime(props["createdAt"]),
	}
}

func reviewFromProps(props map[string]interface{}) model.Review {
	r := model.Review{
		ID:        asString(props["id"]),
		Rating:    asFloat64(props["rating"]),
		Text:      asString(props["text"]),
		CreatedAt: asTime(props["createdAt"]),
	}
	if t, ok := props["updatedAt"].(time.Time); ok {
		r.UpdatedAt = &t
	}
	return r
}

func reviewFromRecord(rec *neo4j.Record, key string) (model.Review, bool) {
	rel, ok := recordValue(rec, key).(neo4j.Relationship)
	if !ok {
		return model.Review{}, false
	}
	return reviewFromProps(rel.Props), true
}
