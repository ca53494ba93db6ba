package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sebitservices/SaborHub-sub000/database"
	"github.com/sebitservices/SaborHub-sub000/models"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var productCollection *mongo.Collection = database.OpenCollection(database.Client, "product")

func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		result, err := productCollection.Find(ctx, bson.M{})
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while listing products"})
			return
		}
		var allProducts []bson.M
		if err := result.All(ctx, &allProducts); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while decoding products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Products fetched successfully",
			"data":    allProducts,
		})
	}
}

func GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		productId := c.Param("product_id")
		var product models.Product
		err := productCollection.FindOne(ctx, bson.M{"product_id": productId}).Decode(&product)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product was not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func GetProductsBySection() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		sectionId := c.Param("section_id")
		result, err := productCollection.Find(ctx, bson.M{"section_id": sectionId})
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while listing products by section"})
			return
		}
		var products []bson.M
		if err := result.All(ctx, &products); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while decoding products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func CreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		var product models.Product
		if err := c.BindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&product)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if msg := validateModifiers(product.Modifiers); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		var section models.MenuSection
		if err := sectionCollection.FindOne(ctx, bson.M{"section_id": product.Section_id}).Decode(&section); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "menu section was not found"})
			return
		}
		product.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		product.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		product.ID = primitive.NewObjectID()
		product.Product_id = product.ID.Hex()
		ensureModifierIds(&product)

		result, err := productCollection.InsertOne(ctx, product)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func UpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		productId := c.Param("product_id")
		var product models.Product
		if err := c.BindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var updateObj primitive.D
		if product.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: product.Name})
		}
		if product.Price != nil {
			updateObj = append(updateObj, bson.E{Key: "price", Value: product.Price})
		}
		if product.Section_id != nil {
			updateObj = append(updateObj, bson.E{Key: "section_id", Value: product.Section_id})
		}
		if product.Description != nil {
			updateObj = append(updateObj, bson.E{Key: "description", Value: product.Description})
		}
		if product.Modifiers != nil {
			if msg := validateModifiers(product.Modifiers); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			ensureModifierIds(&product)
			updateObj = append(updateObj, bson.E{Key: "modifiers", Value: product.Modifiers})
		}
		product.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: product.Updated_at})

		result, err := productCollection.UpdateOne(
			ctx,
			bson.M{"product_id": productId},
			bson.D{{Key: "$set", Value: updateObj}},
		)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func DeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		productId := c.Param("product_id")
		result, err := productCollection.DeleteOne(ctx, bson.M{"product_id": productId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// UploadProductImage stores the uploaded image and a 320px thumbnail
// under the uploads dir and records the public URL on the product.
func UploadProductImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		productId := c.Param("product_id")

		var product models.Product
		if err := productCollection.FindOne(ctx, bson.M{"product_id": productId}).Decode(&product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product was not found"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "only jpg and png images are supported"})
			return
		}

		uploadDir := os.Getenv("UPLOAD_DIR")
		if uploadDir == "" {
			uploadDir = "uploads"
		}
		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while preparing upload dir"})
			return
		}

		fileName := fmt.Sprintf("%s%s", productId, ext)
		fullPath := filepath.Join(uploadDir, fileName)
		if err := c.SaveUploadedFile(file, fullPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while saving image"})
			return
		}

		img, err := imaging.Open(fullPath)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "uploaded file is not a valid image"})
			return
		}
		thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)
		thumbPath := filepath.Join(uploadDir, fmt.Sprintf("%s_thumb%s", productId, ext))
		if err := imaging.Save(thumb, thumbPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occured while saving thumbnail"})
			return
		}

		imageURL := "/uploads/" + fileName
		updated_at, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		_, err = productCollection.UpdateOne(
			ctx,
			bson.M{"product_id": productId},
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "product_image", Value: imageURL},
				{Key: "updated_at", Value: updated_at},
			}}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product image update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product_image": imageURL})
	}
}

func validateModifiers(modifiers []models.Modifier) string {
	for _, modifier := range modifiers {
		if modifier.Selection_type == models.SelectionSingle && modifier.Max_selections > 1 {
			return "single selection modifier cannot allow more than one option"
		}
		if modifier.Max_selections > 0 && modifier.Min_selections > modifier.Max_selections {
			return "min_selections cannot exceed max_selections"
		}
		if modifier.Max_selections > len(modifier.Options) {
			return "max_selections cannot exceed the number of options"
		}
	}
	return ""
}

// ensureModifierIds mints ids for modifiers and options created without
// one so cart line keys stay stable.
func ensureModifierIds(product *models.Product) {
	for i := range product.Modifiers {
		if product.Modifiers[i].Modifier_id == "" {
			product.Modifiers[i].Modifier_id = primitive.NewObjectID().Hex()
		}
		for j := range product.Modifiers[i].Options {
			if product.Modifiers[i].Options[j].Option_id == "" {
				product.Modifiers[i].Options[j].Option_id = primitive.NewObjectID().Hex()
			}
		}
	}
}
