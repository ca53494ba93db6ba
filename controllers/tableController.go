package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/sebitservices/SaborHub-sub000/database"
	"github.com/sebitservices/SaborHub-sub000/models"
	"github.com/sebitservices/SaborHub-sub000/tables"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var tableCollection *mongo.Collection = database.OpenCollection(database.Client, "table")

// joinRegistry holds the live table joins. Joins are a runtime grouping
// of the current service, never persisted.
var joinRegistry = tables.NewRegistry()

func GetTables() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		result, err := tableCollection.Find(ctx, bson.M{})
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while listing tables"})
			return
		}
		var allTables []models.Table
		if err := result.All(ctx, &allTables); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while decoding tables"})
			return
		}
		clusters := tables.Group(allTables, joinRegistry.Groups())
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Tables fetched successfully",
			"data": gin.H{
				"clusters": clusters,
				"joins":    joinRegistry.Groups(),
			},
		})
	}
}

func GetTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		tableId := c.Param("table_id")
		var table models.Table
		err := tableCollection.FindOne(ctx, bson.M{"table_id": tableId}).Decode(&table)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "table was not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"table": table,
			"join":  joinRegistry.GroupOf(tableId),
		})
	}
}

func CreateTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		var table models.Table
		if err := c.BindJSON(&table); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if table.Status == "" {
			table.Status = models.TableStatusFree
		}
		table.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		table.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		table.ID = primitive.NewObjectID()
		table.Table_id = table.ID.Hex()

		validationErr := validate.Struct(table)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Error()})
			return
		}
		// A table belongs to exactly one area; resolve and denormalize
		// the area name for display grouping.
		var area models.Area
		if err := areaCollection.FindOne(ctx, bson.M{"area_id": table.Area_id}).Decode(&area); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "area was not found"})
			return
		}
		table.Area_name = area.Name

		result, err := tableCollection.InsertOne(ctx, table)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "table was not created"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": result})
	}
}

func UpdateTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		tableId := c.Param("table_id")
		var table models.Table
		if err := c.BindJSON(&table); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var updateObj primitive.D
		if table.Table_number != nil {
			updateObj = append(updateObj, bson.E{Key: "table_number", Value: table.Table_number})
		}
		if table.Area_id != nil {
			var area models.Area
			if err := areaCollection.FindOne(ctx, bson.M{"area_id": table.Area_id}).Decode(&area); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "area was not found"})
				return
			}
			updateObj = append(updateObj, bson.E{Key: "area_id", Value: table.Area_id})
			updateObj = append(updateObj, bson.E{Key: "area_name", Value: area.Name})
			// A moved table cannot keep joins from its old area.
			joinRegistry.Unjoin(tableId)
		}
		if table.Status != "" {
			updateObj = append(updateObj, bson.E{Key: "status", Value: table.Status})
		}
		table.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: table.Updated_at})

		result, err := tableCollection.UpdateOne(
			ctx,
			bson.M{"table_id": tableId},
			bson.D{{Key: "$set", Value: updateObj}},
		)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "table update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "table was not found"})
			return
		}
		notifyClients(models.Notification{Event: models.EventTableChanged, Table_id: tableId})
		c.JSON(http.StatusOK, result)
	}
}

func DeleteTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		tableId := c.Param("table_id")

		count, err := orderCollection.CountDocuments(ctx, bson.M{"table_id": tableId, "status": models.OrderStatusActive})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while checking table orders"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "table has an active order"})
			return
		}
		joinRegistry.Unjoin(tableId)
		result, err := tableCollection.DeleteOne(ctx, bson.M{"table_id": tableId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "table delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "table was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

type JoinTablesRequest struct {
	Table_a_id string `json:"table_a_id" validate:"required"`
	Table_b_id string `json:"table_b_id" validate:"required"`
}

func JoinTables() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var req JoinTablesRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var tableA, tableB models.Table
		if err := tableCollection.FindOne(ctx, bson.M{"table_id": req.Table_a_id}).Decode(&tableA); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "table was not found"})
			return
		}
		if err := tableCollection.FindOne(ctx, bson.M{"table_id": req.Table_b_id}).Decode(&tableB); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "table was not found"})
			return
		}

		group, err := joinRegistry.Join(tableA, tableB)
		if err != nil {
			status := http.StatusBadRequest
			if joinErr, ok := err.(*tables.InvalidJoinError); ok && joinErr.Conflict {
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		notifyClients(models.Notification{Event: models.EventTableChanged, Table_id: tableA.Table_id, Payload: group})
		c.JSON(http.StatusOK, group)
	}
}

func UnjoinTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		tableId := c.Param("table_id")
		joinRegistry.Unjoin(tableId)
		notifyClients(models.Notification{Event: models.EventTableChanged, Table_id: tableId})
		c.JSON(http.StatusOK, gin.H{"message": "table unjoined"})
	}
}

// GetTableQR answers a PNG QR code pointing at the public menu for the
// table, for printing on the physical table.
func GetTableQR() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		tableId := c.Param("table_id")
		var table models.Table
		err := tableCollection.FindOne(ctx, bson.M{"table_id": tableId}).Decode(&table)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "table was not found"})
			return
		}

		baseURL := os.Getenv("PUBLIC_MENU_URL")
		if baseURL == "" {
			baseURL = "http://localhost:8000/menu"
		}
		png, err := qrcode.Encode(fmt.Sprintf("%s?table=%s", baseURL, tableId), qrcode.Medium, 256)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while generating qr code"})
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}
