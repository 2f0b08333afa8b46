// Package mongostore is the persistent store.Store backend: two
// collections, precise (unique on addr_str+rule_str) and gradual (unique
// on addr_str), with WithTx scoping each batch to a client session
// transaction.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/zipcodetw/zipcodetw/internal/store"
)

// Store is a MongoDB-backed store.Store. The zero value is not usable;
// construct one with New.
type Store struct {
	client  *mongo.Client
	precise *mongo.Collection
	gradual *mongo.Collection
	logger  *zap.Logger
}

type preciseDoc struct {
	AddrStr string `bson:"addr_str"`
	RuleStr string `bson:"rule_str"`
	Zipcode string `bson:"zipcode"`
}

type gradualDoc struct {
	AddrStr string `bson:"addr_str"`
	Zipcode string `bson:"zipcode"`
}

// New connects collections in dbName off client and ensures the unique
// indexes the precise/gradual lookup depends on exist. Index creation
// failures are logged, not fatal — a pre-provisioned cluster may already
// have them under a stricter ops-managed definition.
func New(client *mongo.Client, dbName string, logger *zap.Logger) *Store {
	db := client.Database(dbName)
	s := &Store{
		client:  client,
		precise: db.Collection("precise"),
		gradual: db.Collection("gradual"),
		logger:  logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := s.precise.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "addr_str", Value: 1}, {Key: "rule_str", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Warn("could not create precise index", zap.Error(err))
	}

	_, err = s.gradual.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "addr_str", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Warn("could not create gradual index", zap.Error(err))
	}

	return s
}

// Close disconnects the underlying client. Unlike memstore, which lives
// only for the process, a mongostore.Store owns a real connection and the
// caller is expected to close it on shutdown.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// PutPrecise upserts on the (addr_str, rule_str) filter with $setOnInsert,
// so a second write for the same key is a no-op at the database level
// rather than racing a find-then-insert in application code.
func (s *Store) PutPrecise(ctx context.Context, addrKey, ruleKey, zipcode string) error {
	filter := bson.M{"addr_str": addrKey, "rule_str": ruleKey}
	update := bson.M{"$setOnInsert": preciseDoc{AddrStr: addrKey, RuleStr: ruleKey, Zipcode: zipcode}}
	_, err := s.precise.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongostore: put precise: %w", err)
	}
	return nil
}

// PutGradual merges the common prefix of any existing zipcode for addrKey
// with zipcode. The read-then-write is only atomic with respect to other
// writers when run inside WithTx's session transaction.
func (s *Store) PutGradual(ctx context.Context, addrKey, zipcode string) error {
	var existing gradualDoc
	err := s.gradual.FindOne(ctx, bson.M{"addr_str": addrKey}).Decode(&existing)
	switch {
	case err == mongo.ErrNoDocuments:
		_, err = s.gradual.InsertOne(ctx, gradualDoc{AddrStr: addrKey, Zipcode: zipcode})
	case err != nil:
		return fmt.Errorf("mongostore: put gradual: reading existing: %w", err)
	default:
		merged := store.CommonPrefix(existing.Zipcode, zipcode)
		_, err = s.gradual.UpdateOne(ctx, bson.M{"addr_str": addrKey}, bson.M{"$set": bson.M{"zipcode": merged}})
	}
	if err != nil {
		return fmt.Errorf("mongostore: put gradual: %w", err)
	}
	return nil
}

// PreciseRows returns every (rule_str, zipcode) row stored under addrKey.
func (s *Store) PreciseRows(ctx context.Context, addrKey string) ([]store.RuleZip, error) {
	cursor, err := s.precise.Find(ctx, bson.M{"addr_str": addrKey})
	if err != nil {
		return nil, fmt.Errorf("mongostore: precise rows: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []store.RuleZip
	for cursor.Next(ctx) {
		var doc preciseDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongostore: precise rows: decoding: %w", err)
		}
		rows = append(rows, store.RuleZip{RuleStr: doc.RuleStr, Zipcode: doc.Zipcode})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongostore: precise rows: %w", err)
	}
	return rows, nil
}

// Gradual returns the zipcode stored for addrKey, if any.
func (s *Store) Gradual(ctx context.Context, addrKey string) (string, bool, error) {
	var doc gradualDoc
	err := s.gradual.FindOne(ctx, bson.M{"addr_str": addrKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("mongostore: gradual: %w", err)
	}
	return doc.Zipcode, true, nil
}

// WithTx runs fn inside a client session transaction: fn's writes commit
// together on a nil return, or roll back as a unit on error.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx store.Store) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("mongostore: starting session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc, s)
	})
	if err != nil {
		return fmt.Errorf("mongostore: transaction: %w", err)
	}
	return nil
}
