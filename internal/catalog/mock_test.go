package catalog

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/cinegraph/cinegraph/internal/driver"
)

// ExecutedQuery records one statement sent through the mock.
type ExecutedQuery struct {
	Query  string
	Params map[string]interface{}
}

// MockDriver queues a result per ExecuteQuery call and captures every
// statement, including those issued inside ExecuteWrite transactions.
type MockDriver struct {
	Executed  []ExecutedQuery
	Results   []neo4j.EagerResult
	Err       error
	TxRecords [][]*neo4j.Record
	TxErr     error
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.Executed = append(m.Executed, ExecutedQuery{Query: query, Params: params})
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	if len(m.Results) == 0 {
		return neo4j.EagerResult{}, nil
	}
	result := m.Results[0]
	m.Results = m.Results[1:]
	return result, nil
}

type mockTx struct {
	m *MockDriver
}

func (t mockTx) Run(ctx context.Context, query string, params map[string]interface{}) ([]*neo4j.Record, error) {
	t.m.Executed = append(t.m.Executed, ExecutedQuery{Query: query, Params: params})
	if t.m.TxErr != nil {
		return nil, t.m.TxErr
	}
	if len(t.m.TxRecords) == 0 {
		return nil, nil
	}
	records := t.m.TxRecords[0]
	t.m.TxRecords = t.m.TxRecords[1:]
	return records, nil
}

func (m *MockDriver) ExecuteWrite(ctx context.Context, work func(ctx context.Context, tx driver.Tx) error) error {
	return work(ctx, mockTx{m: m})
}

func (m *MockDriver) BuildConstraints(ctx context.Context) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

// record builds an eager record for mock results.
func record(keys []string, values ...interface{}) *neo4j.Record {
	return &neo4j.Record{Keys: keys, Values: values}
}

func eager(records ...*neo4j.Record) neo4j.EagerResult {
	return neo4j.EagerResult{Records: records}
}

func movieNode(id, title string, year int64) neo4j.Node {
	return neo4j.Node{Props: map[string]interface{}{
		"id":          id,
		"title":       title,
		"releaseYear": year,
	}}
}
