package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/sebitservices/SaborHub-sub000/database"
	"github.com/sebitservices/SaborHub-sub000/models"
	"github.com/sebitservices/SaborHub-sub000/schedule"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var sectionCollection *mongo.Collection = database.OpenCollection(database.Client, "menuSection")

func GetMenuSections() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		opts := options.Find().SetSort(bson.M{"order": 1})
		result, err := sectionCollection.Find(ctx, bson.M{}, opts)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while listing menu sections"})
			return
		}
		var allSections []models.MenuSection
		if err := result.All(ctx, &allSections); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while decoding menu sections"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Menu sections fetched successfully",
			"data":    allSections,
		})
	}
}

// GetOpenMenuSections lists only the sections whose schedule is open
// right now. Callers poll this; availability is evaluated per request.
func GetOpenMenuSections() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		opts := options.Find().SetSort(bson.M{"order": 1})
		result, err := sectionCollection.Find(ctx, bson.M{}, opts)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while listing menu sections"})
			return
		}
		var allSections []models.MenuSection
		if err := result.All(ctx, &allSections); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while decoding menu sections"})
			return
		}
		now := time.Now()
		openSections := []models.MenuSection{}
		for _, section := range allSections {
			if schedule.IsOpen(section.Schedule, now) {
				openSections = append(openSections, section)
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Open menu sections fetched successfully",
			"data":    openSections,
		})
	}
}

func GetMenuSection() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		sectionId := c.Param("section_id")
		var section models.MenuSection
		err := sectionCollection.FindOne(ctx, bson.M{"section_id": sectionId}).Decode(&section)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu section was not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"section": section,
			"is_open": schedule.IsOpen(section.Schedule, time.Now()),
		})
	}
}

func CreateMenuSection() gin.HandlerFunc {
	return func(c *gin.Context) {
		var section models.MenuSection
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		if err := c.BindJSON(&section); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&section)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if err := validateWeekTable(section.Schedule); err != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err})
			return
		}
		section.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		section.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		section.ID = primitive.NewObjectID()
		section.Section_id = section.ID.Hex()

		result, insertErr := sectionCollection.InsertOne(ctx, section)
		defer cancel()
		if insertErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu section was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func UpdateMenuSection() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		sectionId := c.Param("section_id")
		var section models.MenuSection
		if err := c.BindJSON(&section); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validateWeekTable(section.Schedule); err != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err})
			return
		}
		var updateObj primitive.D
		if section.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: section.Name})
		}
		updateObj = append(updateObj, bson.E{Key: "order", Value: section.Order})
		updateObj = append(updateObj, bson.E{Key: "schedule", Value: section.Schedule})
		section.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: section.Updated_at})

		result, err := sectionCollection.UpdateOne(
			ctx,
			bson.M{"section_id": sectionId},
			bson.D{{Key: "$set", Value: updateObj}},
		)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu section update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu section was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func DeleteMenuSection() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		sectionId := c.Param("section_id")

		count, err := productCollection.CountDocuments(ctx, bson.M{"section_id": sectionId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while checking section products"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "section still contains products"})
			return
		}
		result, err := sectionCollection.DeleteOne(ctx, bson.M{"section_id": sectionId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu section delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu section was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// validateWeekTable enforces at most one schedule entry per weekday when
// the section is not always available.
func validateWeekTable(s models.SectionSchedule) string {
	if s.Always_available {
		return ""
	}
	seen := make(map[int]bool)
	for _, day := range s.Days {
		if day.Day_of_week < 0 || day.Day_of_week > 6 {
			return "day_of_week must be between 0 and 6"
		}
		if seen[day.Day_of_week] {
			return "duplicate schedule entry for weekday"
		}
		seen[day.Day_of_week] = true
	}
	return ""
}
