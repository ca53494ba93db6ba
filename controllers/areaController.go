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

var areaCollection *mongo.Collection = database.OpenCollection(database.Client, "area")

func GetAreas() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		result, err := areaCollection.Find(ctx, bson.M{})
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while listing areas"})
			return
		}
		var allAreas []bson.M
		if err := result.All(ctx, &allAreas); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while decoding areas"})
			return
		}
		c.JSON(http.StatusOK, allAreas)
	}
}

func CreateArea() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		var area models.Area
		if err := c.BindJSON(&area); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&area)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		area.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		area.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		area.ID = primitive.NewObjectID()
		area.Area_id = area.ID.Hex()

		result, err := areaCollection.InsertOne(ctx, area)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "area was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func UpdateArea() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		areaId := c.Param("area_id")
		var area models.Area
		if err := c.BindJSON(&area); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var updateObj primitive.D
		if area.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: area.Name})
		}
		area.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: area.Updated_at})

		result, err := areaCollection.UpdateOne(
			ctx,
			bson.M{"area_id": areaId},
			bson.D{{Key: "$set", Value: updateObj}},
		)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "area update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "area was not found"})
			return
		}
		// Keep the denormalized area name on tables in sync.
		if area.Name != nil {
			_, err = tableCollection.UpdateMany(
				ctx,
				bson.M{"area_id": areaId},
				bson.D{{Key: "$set", Value: bson.D{{Key: "area_name", Value: area.Name}}}},
			)
			if err != nil {
				log.Println("failed to propagate area rename:", err)
			}
		}
		c.JSON(http.StatusOK, result)
	}
}

func DeleteArea() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		areaId := c.Param("area_id")

		count, err := tableCollection.CountDocuments(ctx, bson.M{"area_id": areaId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while checking area tables"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "area still contains tables"})
			return
		}
		result, err := areaCollection.DeleteOne(ctx, bson.M{"area_id": areaId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "area delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "area was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
