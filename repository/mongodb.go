package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/dhruvika404/jewel-ai-sub000/models"
	"github.com/dhruvika404/jewel-ai-sub000/utils"
)

const (
	SalesPersonsCollection     = "salesPersons"
	ClientsCollection          = "clients"
	NewOrdersCollection        = "newOrders"
	PendingOrdersCollection    = "pendingOrders"
	PendingMaterialsCollection = "pendingMaterials"
	CadOrdersCollection        = "cadOrders"
	RemarksCollection          = "remarks"
)

var (
	client *mongo.Client
	db     *mongo.Database
	ctx    = context.Background()
	mu     sync.RWMutex
)

// RecordCollections maps each follow-up record variant to its collection.
// Bulk operations address exactly one of these per call.
var RecordCollections = map[models.RecordType]string{
	models.RecordTypeNewOrder:        NewOrdersCollection,
	models.RecordTypePendingOrder:    PendingOrdersCollection,
	models.RecordTypePendingMaterial: PendingMaterialsCollection,
	models.RecordTypeCadOrder:        CadOrdersCollection,
}

// InitMongoDB connects and pings the database.
func InitMongoDB(uri, dbName string) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var err error
	clientOptions := options.Client().ApplyURI(uri)
	mu.Lock()
	defer mu.Unlock()
	client, err = mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return fmt.Errorf("mongodb connect failed: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping failed: %w", err)
	}

	db = client.Database(dbName)
	utils.Logger.Info().Str("database", dbName).Msg("connected to mongodb")

	return nil
}

// CloseMongoDB disconnects from the database.
func CloseMongoDB() {
	mu.Lock()
	defer mu.Unlock()
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			utils.Logger.Error().Err(err).Msg("mongodb disconnect failed")
			return
		}
		utils.Logger.Info().Msg("disconnected from mongodb")
	}
}

// GetDB returns the database handle. InitMongoDB must run first.
func GetDB() *mongo.Database {
	mu.RLock()
	defer mu.RUnlock()
	return db
}

// GetContext returns the base context for database operations.
func GetContext() context.Context {
	return ctx
}

// Collection returns a handle for the named collection.
func Collection(name string) *mongo.Collection {
	return GetDB().Collection(name)
}

// ExecuteDbOperation runs a database operation with retries on transient
// failures.
func ExecuteDbOperation(operation func() (interface{}, error), retries int) (interface{}, error) {
	if retries <= 0 {
		retries = 3
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		result, err := operation()
		if err == nil {
			return result, nil
		}

		lastErr = err
		utils.Logger.Error().Err(err).Msgf("db operation failed, retry (%d/%d)", i+1, retries)

		if !isRetryableError(err) {
			break
		}

		time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
	}

	return nil, lastErr
}

// isRetryableError reports whether the error is worth retrying.
func isRetryableError(err error) bool {
	retryableCodes := map[int]bool{
		6:     true, // HostUnreachable
		7:     true, // HostNotFound
		89:    true, // NetworkTimeout
		91:    true, // ShutdownInProgress
		189:   true, // PrimarySteppedDown
		10107: true, // NotMaster
		13436: true, // NotMasterNoSlaveOk
		11600: true, // InterruptedAtShutdown
		11602: true, // InterruptedDueToReplStateChange
		10058: true, // ConnectionReset
	}

	if cmdErr, ok := err.(mongo.CommandError); ok {
		return retryableCodes[int(cmdErr.Code)]
	}

	return isNetworkError(err)
}

// isNetworkError checks for common transport failures.
func isNetworkError(err error) bool {
	errMsg := strings.ToLower(err.Error())
	networkErrors := []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"no reachable servers",
		"timeout",
		"context deadline exceeded",
		"server selection error",
	}

	for _, ne := range networkErrors {
		if strings.Contains(errMsg, ne) {
			return true
		}
	}

	return false
}

// InitializeCollections creates any missing collections and the indexes the
// list queries depend on.
func InitializeCollections() error {
	collections := []string{
		SalesPersonsCollection,
		ClientsCollection,
		NewOrdersCollection,
		PendingOrdersCollection,
		PendingMaterialsCollection,
		CadOrdersCollection,
		RemarksCollection,
	}

	existing, err := GetDB().ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("list collections failed: %w", err)
	}
	existingSet := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingSet[name] = true
	}

	for _, collName := range collections {
		if !existingSet[collName] {
			if err := GetDB().CreateCollection(ctx, collName); err != nil {
				return fmt.Errorf("create collection %s failed: %w", collName, err)
			}
			utils.Logger.Info().Str("collection", collName).Msg("collection created")
		}
	}

	if err := ensureIndexes(); err != nil {
		return err
	}

	return nil
}

// ensureIndexes builds the lookup indexes. userCode is the join key between
// clients and follow-up records, so it gets a unique index.
func ensureIndexes() error {
	unique := options.Index().SetUnique(true)

	clientIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "userCode", Value: 1}},
		Options: unique,
	}
	if _, err := Collection(ClientsCollection).Indexes().CreateOne(ctx, clientIdx); err != nil {
		return fmt.Errorf("client index failed: %w", err)
	}

	userIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "userCode", Value: 1}},
		Options: unique,
	}
	if _, err := Collection(SalesPersonsCollection).Indexes().CreateOne(ctx, userIdx); err != nil {
		return fmt.Errorf("salesPerson index failed: %w", err)
	}

	for _, collName := range RecordCollections {
		idx := []mongo.IndexModel{
			{Keys: bson.D{{Key: "clientCode", Value: 1}}},
			{Keys: bson.D{{Key: "salesExecCode", Value: 1}}},
			{Keys: bson.D{{Key: "nextFollowUpDate", Value: 1}}},
		}
		if _, err := Collection(collName).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("%s indexes failed: %w", collName, err)
		}
	}

	return nil
}

// InitializeAdminAccount seeds the default admin login on first boot.
func InitializeAdminAccount() error {
	coll := Collection(SalesPersonsCollection)

	count, err := coll.CountDocuments(ctx, bson.M{"role": models.UserRoleAdmin})
	if err != nil {
		return fmt.Errorf("admin account check failed: %w", err)
	}

	if count > 0 {
		utils.Logger.Info().Msg("admin account exists, skipping seed")
		return nil
	}

	admin := models.SalesPerson{
		UserCode:  "ADMIN",
		Name:      "Administrator",
		Password:  utils.HashPassword("admin123"),
		Role:      models.UserRoleAdmin,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := coll.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("admin account seed failed: %w", err)
	}

	utils.Logger.Info().Msg("seeded default admin account")
	return nil
}
