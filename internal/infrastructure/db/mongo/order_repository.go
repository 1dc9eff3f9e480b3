package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/orderdesk/approval-system/internal/core/domain"
	"github.com/orderdesk/approval-system/internal/core/ports"
)

const collectionOrders = "orders"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(collectionOrders)}
}

type orderDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Username    string             `bson:"username"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Quantity    int                `bson:"quantity"`
	Status      string             `bson:"status"`
	ApprovedBy  *string            `bson:"approved_by"`
	ApprovedAt  *time.Time         `bson:"approved_at"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *orderDoc) toDomain() *domain.Order {
	o := &domain.Order{
		ID:          d.ID.Hex(),
		Username:    d.Username,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Quantity:    d.Quantity,
		Status:      domain.OrderStatus(d.Status),
		ApprovedBy:  d.ApprovedBy,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
	if d.ApprovedAt != nil {
		at := d.ApprovedAt.UTC()
		o.ApprovedAt = &at
	}
	return o
}

// parseID converts a hex order id into an ObjectID, reporting a malformed id
// as domain.ErrInvalidID before any query runs.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := orderDoc{
		Username:    o.Username,
		Name:        o.Name,
		Description: o.Description,
		Price:       o.Price,
		Quantity:    o.Quantity,
		Status:      string(o.Status),
		ApprovedBy:  o.ApprovedBy,
		ApprovedAt:  o.ApprovedAt,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = oid.Hex()
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc orderDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns one page of orders matching the scope filter, newest first,
// plus the total matching count.
func (r *OrderRepository) List(ctx context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.Username != "" {
		query["username"] = filter.Username
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	skip := int64(filter.Page-1) * int64(filter.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var orders []*domain.Order
	for cur.Next(ctx) {
		var doc orderDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return orders, total, nil
}

// UpdateContent applies the non-nil patch fields with $set and returns the
// updated document. Status and approval fields never appear in the update.
func (r *OrderRepository) UpdateContent(ctx context.Context, id string, patch ports.ContentPatch, updatedAt time.Time) (*domain.Order, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": updatedAt}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}

	return r.findOneAndUpdate(ctx, oid, bson.M{"$set": set})
}

// UpdateStatus sets the status together with the approval stamp. The patch
// carries nil stamps for a transition back to pending, which clears both
// fields in the same atomic write.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, patch ports.StatusPatch, updatedAt time.Time) (*domain.Order, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"status":      string(patch.Status),
		"approved_by": patch.ApprovedBy,
		"approved_at": patch.ApprovedAt,
		"updated_at":  updatedAt,
	}
	return r.findOneAndUpdate(ctx, oid, bson.M{"$set": set})
}

func (r *OrderRepository) findOneAndUpdate(ctx context.Context, oid primitive.ObjectID, update bson.M) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc orderDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("update order: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// EnsureIndexes creates the query indexes backing the role scopes.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
