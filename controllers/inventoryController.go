package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/sebitservices/SaborHub-sub000/database"
	"github.com/sebitservices/SaborHub-sub000/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var inventoryCollection *mongo.Collection = database.OpenCollection(database.Client, "inventory")
var providerCollection *mongo.Collection = database.OpenCollection(database.Client, "provider")

func GetInventoryItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		result, err := inventoryCollection.Find(ctx, bson.M{})
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while listing inventory items"})
			return
		}
		var allItems []bson.M
		if err := result.All(ctx, &allItems); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while decoding inventory items"})
			return
		}
		c.JSON(http.StatusOK, allItems)
	}
}

func CreateInventoryItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		var item models.InventoryItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&item)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if item.Provider_id != nil {
			var provider models.Provider
			if err := providerCollection.FindOne(ctx, bson.M{"provider_id": item.Provider_id}).Decode(&provider); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "provider was not found"})
				return
			}
		}
		item.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		item.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		item.ID = primitive.NewObjectID()
		item.Item_id = item.ID.Hex()

		result, err := inventoryCollection.InsertOne(ctx, item)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "inventory item was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func UpdateInventoryItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		itemId := c.Param("item_id")
		var item models.InventoryItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var updateObj primitive.D
		if item.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: item.Name})
		}
		if item.Unit != nil {
			updateObj = append(updateObj, bson.E{Key: "unit", Value: item.Unit})
		}
		if item.Quantity != nil {
			updateObj = append(updateObj, bson.E{Key: "quantity", Value: item.Quantity})
		}
		if item.Min_stock != nil {
			updateObj = append(updateObj, bson.E{Key: "min_stock", Value: item.Min_stock})
		}
		if item.Provider_id != nil {
			var provider models.Provider
			if err := providerCollection.FindOne(ctx, bson.M{"provider_id": item.Provider_id}).Decode(&provider); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "provider was not found"})
				return
			}
			updateObj = append(updateObj, bson.E{Key: "provider_id", Value: item.Provider_id})
		}
		item.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: item.Updated_at})

		result, err := inventoryCollection.UpdateOne(
			ctx,
			bson.M{"item_id": itemId},
			bson.D{{Key: "$set", Value: updateObj}},
		)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "inventory item update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "inventory item was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func DeleteInventoryItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		itemId := c.Param("item_id")
		result, err := inventoryCollection.DeleteOne(ctx, bson.M{"item_id": itemId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "inventory item delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "inventory item was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func GetProviders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		result, err := providerCollection.Find(ctx, bson.M{})
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while listing providers"})
			return
		}
		var allProviders []bson.M
		if err := result.All(ctx, &allProviders); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while decoding providers"})
			return
		}
		c.JSON(http.StatusOK, allProviders)
	}
}

func CreateProvider() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		var provider models.Provider
		if err := c.BindJSON(&provider); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&provider)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		provider.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		provider.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		provider.ID = primitive.NewObjectID()
		provider.Provider_id = provider.ID.Hex()

		result, err := providerCollection.InsertOne(ctx, provider)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "provider was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func UpdateProvider() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		providerId := c.Param("provider_id")
		var provider models.Provider
		if err := c.BindJSON(&provider); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var updateObj primitive.D
		if provider.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: provider.Name})
		}
		if provider.Phone != nil {
			updateObj = append(updateObj, bson.E{Key: "phone", Value: provider.Phone})
		}
		if provider.Email != nil {
			updateObj = append(updateObj, bson.E{Key: "email", Value: provider.Email})
		}
		provider.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: provider.Updated_at})

		result, err := providerCollection.UpdateOne(
			ctx,
			bson.M{"provider_id": providerId},
			bson.D{{Key: "$set", Value: updateObj}},
		)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "provider update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func DeleteProvider() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		providerId := c.Param("provider_id")

		count, err := inventoryCollection.CountDocuments(ctx, bson.M{"provider_id": providerId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while checking provider items"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "provider still has inventory items"})
			return
		}
		result, err := providerCollection.DeleteOne(ctx, bson.M{"provider_id": providerId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "provider delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
