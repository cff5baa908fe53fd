package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"akbstore/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductsCollection is the collection holding product documents.
const ProductsCollection = "products"

// MongoProductRepository implements ProductRepository on a MongoDB collection.
// Documents are addressed by their "id" field, never by _id.
type MongoProductRepository struct {
	client *mongo.Client
	col    *mongo.Collection
}

// ConnectMongo dials uri and pings the primary before returning the client.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// NewMongoProductRepository creates a repository over dbName.products.
func NewMongoProductRepository(client *mongo.Client, dbName string) *MongoProductRepository {
	return &MongoProductRepository{
		client: client,
		col:    client.Database(dbName).Collection(ProductsCollection),
	}
}

// EnsureIndexes creates the unique id index and the status/category lookup
// indexes. Existing indexes are left alone.
func (r *MongoProductRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create product indexes: %w", err)
	}
	return nil
}

// Find runs filter against the collection.
func (r *MongoProductRepository) Find(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	opts := options.Find()
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cur, err := r.col.Find(ctx, mongoFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	defer cur.Close(ctx)

	products := make([]models.Product, 0)
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// GetByID returns the document whose id field equals id.
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// DistinctActiveCategories returns the distinct category values of active
// products.
func (r *MongoProductRepository) DistinctActiveCategories(ctx context.Context) ([]string, error) {
	values, err := r.col.Distinct(ctx, "category", bson.M{"status": models.StatusActive})
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct categories: %w", err)
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// InsertMany inserts products as one ordered batch.
func (r *MongoProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	docs := make([]interface{}, len(products))
	for i := range products {
		docs[i] = products[i]
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert products: %w", err)
	}
	return nil
}

// Count returns the number of documents in the collection.
func (r *MongoProductRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

// Close disconnects the client.
func (r *MongoProductRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func mongoFilter(filter ProductFilter) bson.M {
	query := bson.M{}
	if filter.ActiveOnly {
		query["status"] = models.StatusActive
	}
	if filter.Category != "" {
		query["category"] = literalRegex(filter.Category)
	}
	if filter.Search != "" {
		rx := literalRegex(filter.Search)
		query["$or"] = bson.A{
			bson.M{"name": rx},
			bson.M{"description": rx},
			bson.M{"tags": rx},
			bson.M{"sku": rx},
		}
	}
	return query
}

// literalRegex matches s anywhere in a string field, ignoring case.
func literalRegex(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}
