package orders

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sebitservices/SaborHub-sub000/errs"
	"github.com/sebitservices/SaborHub-sub000/models"
)

// MongoStore implements Store over the order and table collections.
type MongoStore struct {
	orderCollection *mongo.Collection
	tableCollection *mongo.Collection
}

func NewMongoStore(orderCollection, tableCollection *mongo.Collection) *MongoStore {
	return &MongoStore{
		orderCollection: orderCollection,
		tableCollection: tableCollection,
	}
}

func (s *MongoStore) FindActiveOrder(ctx context.Context, tableID string) (*models.Order, error) {
	var order models.Order
	filter := bson.M{"table_id": tableID, "status": models.OrderStatusActive}
	err := s.orderCollection.FindOne(ctx, filter).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *MongoStore) CreateOrder(ctx context.Context, order models.Order) error {
	_, err := s.orderCollection.InsertOne(ctx, order)
	return err
}

func (s *MongoStore) AppendLines(ctx context.Context, orderID string, lines []models.OrderLine) error {
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "lines", Value: bson.D{{Key: "$each", Value: lines}}}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now().UTC()}}},
	}
	result, err := s.orderCollection.UpdateOne(ctx, bson.M{"order_id": orderID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &errs.NotFoundError{Resource: "order", ID: orderID}
	}
	return nil
}

func (s *MongoStore) SetOrderStatus(ctx context.Context, orderID string, status string) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "status", Value: status},
			{Key: "updated_at", Value: time.Now().UTC()},
		}},
	}
	result, err := s.orderCollection.UpdateOne(ctx, bson.M{"order_id": orderID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &errs.NotFoundError{Resource: "order", ID: orderID}
	}
	return nil
}

func (s *MongoStore) SetTableStatus(ctx context.Context, tableID string, status string) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "status", Value: status},
			{Key: "updated_at", Value: time.Now().UTC()},
		}},
	}
	result, err := s.tableCollection.UpdateOne(ctx, bson.M{"table_id": tableID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &errs.NotFoundError{Resource: "table", ID: tableID}
	}
	return nil
}
