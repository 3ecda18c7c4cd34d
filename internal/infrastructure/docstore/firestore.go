package docstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore adapts a *firestore.Client to the Store contract.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Collection(name string) Collection {
	return &firestoreCollection{ref: s.client.Collection(name)}
}

type firestoreCollection struct {
	ref *firestore.CollectionRef
}

func (c *firestoreCollection) NewID() string {
	return c.ref.NewDoc().ID
}

func (c *firestoreCollection) Get(ctx context.Context, id string) (Document, error) {
	snap, err := c.ref.Doc(id).Get(ctx)
	if err != nil {
		return nil, mapFirestoreError(err)
	}
	return &firestoreDocument{snap: snap}, nil
}

func (c *firestoreCollection) Set(ctx context.Context, id string, data map[string]interface{}) error {
	_, err := c.ref.Doc(id).Set(ctx, data)
	return mapFirestoreError(err)
}

func (c *firestoreCollection) Update(ctx context.Context, id string, updates []Update) error {
	fsUpdates := make([]firestore.Update, len(updates))
	for i, u := range updates {
		value := u.Value
		if inc, ok := value.(incrementValue); ok {
			value = firestore.Increment(inc.Delta)
		}
		fsUpdates[i] = firestore.Update{Path: u.Path, Value: value}
	}

	_, err := c.ref.Doc(id).Update(ctx, fsUpdates)
	return mapFirestoreError(err)
}

func (c *firestoreCollection) Delete(ctx context.Context, id string) error {
	_, err := c.ref.Doc(id).Delete(ctx)
	return mapFirestoreError(err)
}

func (c *firestoreCollection) Query() Query {
	return &firestoreQuery{ref: c.ref, query: c.ref.Query}
}

type firestoreQuery struct {
	ref      *firestore.CollectionRef
	query    firestore.Query
	cursorID string
}

func (q *firestoreQuery) Where(path, op string, value interface{}) Query {
	return &firestoreQuery{ref: q.ref, query: q.query.Where(path, op, value), cursorID: q.cursorID}
}

func (q *firestoreQuery) OrderBy(path string, dir Direction) Query {
	fsDir := firestore.Asc
	if dir == Descending {
		fsDir = firestore.Desc
	}
	return &firestoreQuery{ref: q.ref, query: q.query.OrderBy(path, fsDir), cursorID: q.cursorID}
}

func (q *firestoreQuery) StartAfter(docID string) Query {
	return &firestoreQuery{ref: q.ref, query: q.query, cursorID: docID}
}

func (q *firestoreQuery) Limit(n int) Query {
	return &firestoreQuery{ref: q.ref, query: q.query.Limit(n), cursorID: q.cursorID}
}

func (q *firestoreQuery) Documents(ctx context.Context) ([]Document, error) {
	query := q.query
	if q.cursorID != "" {
		// Cursor ids refer to raw documents; resolve to a snapshot so the
		// order clause applies.
		snap, err := q.ref.Doc(q.cursorID).Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve cursor %q: %w", q.cursorID, mapFirestoreError(err))
		}
		query = query.StartAfter(snap)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapFirestoreError(err)
		}
		docs = append(docs, &firestoreDocument{snap: snap})
	}
	return docs, nil
}

type firestoreDocument struct {
	snap *firestore.DocumentSnapshot
}

func (d *firestoreDocument) ID() string {
	return d.snap.Ref.ID
}

func (d *firestoreDocument) Data() map[string]interface{} {
	return d.snap.Data()
}

// mapFirestoreError translates the client's status codes into the contract's
// sentinels. FailedPrecondition is how Firestore reports a query that needs
// a composite index it does not have.
func mapFirestoreError(err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %v", ErrUnsupportedQuery, err)
	}
	return err
}
