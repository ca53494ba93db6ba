package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/sebitservices/SaborHub-sub000/cart"
	"github.com/sebitservices/SaborHub-sub000/database"
	"github.com/sebitservices/SaborHub-sub000/errs"
	"github.com/sebitservices/SaborHub-sub000/models"
	"github.com/sebitservices/SaborHub-sub000/orders"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

var orderAdapter = orders.NewAdapter(orders.NewMongoStore(orderCollection, tableCollection))

// cartStore keeps unconfirmed carts per table. With REDIS_ADDR set the
// carts survive restarts and are shared across nodes; otherwise they
// live in process memory.
var cartStore cart.Store = newCartStore()

func newCartStore() cart.Store {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, keeping carts in memory")
		return cart.NewMemoryStore()
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	return cart.NewRedisStore(client)
}

func errStatus(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errs.IsNotFound(err):
		return http.StatusNotFound
	case errs.IsConflict(err):
		return http.StatusConflict
	case errs.IsExternalStore(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		opts := options.Find().SetSort(bson.M{"created_at": -1})
		result, err := orderCollection.Find(ctx, bson.M{}, opts)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		var allOrders []bson.M
		if err := result.All(ctx, &allOrders); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while decoding orders"})
			return
		}
		c.JSON(http.StatusOK, allOrders)
	}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		orderId := c.Param("order_id")
		var order models.Order
		err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GetActiveOrderByTable answers the single non-cancelled order for the
// table, or 404 when the table is free.
func GetActiveOrderByTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		tableId := c.Param("table_id")
		var order models.Order
		err := orderCollection.FindOne(ctx, bson.M{"table_id": tableId, "status": models.OrderStatusActive}).Decode(&order)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "table has no active order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type AddToCartRequest struct {
	Product_id          string              `json:"product_id" validate:"required"`
	Modifier_selections map[string][]string `json:"modifier_selections"`
	Quantity            int                 `json:"quantity"`
	Comment             string              `json:"comment"`
}

func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		tableId := c.Param("table_id")
		current, err := cartStore.Load(ctx, tableId)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		if current == nil {
			current = cart.New(tableId)
		}
		c.JSON(http.StatusOK, gin.H{"cart": current, "total": current.Total()})
	}
}

func AddToCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		tableId := c.Param("table_id")
		var req AddToCartRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		var product models.Product
		if err := productCollection.FindOne(ctx, bson.M{"product_id": req.Product_id}).Decode(&product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product was not found"})
			return
		}

		current, err := cartStore.Load(ctx, tableId)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		if current == nil {
			current = cart.New(tableId)
		}
		if _, err := current.Add(product, req.Modifier_selections, req.Quantity, req.Comment); err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		if err := cartStore.Save(ctx, current); err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": current, "total": current.Total()})
	}
}

func DecrementCartLine() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		tableId := c.Param("table_id")
		lineKey := c.Param("line_key")

		current, err := cartStore.Load(ctx, tableId)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		if current == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "table has no cart"})
			return
		}
		current.Decrement(lineKey)
		if err := cartStore.Save(ctx, current); err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": current, "total": current.Total()})
	}
}

func RemoveCartLine() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		tableId := c.Param("table_id")
		lineKey := c.Param("line_key")

		current, err := cartStore.Load(ctx, tableId)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		if current == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "table has no cart"})
			return
		}
		current.Remove(lineKey)
		if err := cartStore.Save(ctx, current); err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": current, "total": current.Total()})
	}
}

// ClearCart discards the unconfirmed cart. It never touches the active
// order or any in-flight store call.
func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		tableId := c.Param("table_id")
		if err := cartStore.Clear(ctx, tableId); err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
	}
}

// SubmitCart confirms the table's cart into its order: the first
// submission creates the order and occupies the table, later ones append
// their lines. The session cart is cleared only after the store call
// succeeds.
func SubmitCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		tableId := c.Param("table_id")

		current, err := cartStore.Load(ctx, tableId)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		if current == nil || current.IsEmpty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		createdBy := c.GetString("uid")
		order, err := orderAdapter.SubmitCart(ctx, tableId, current.Lines, createdBy)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		if err := cartStore.Clear(ctx, tableId); err != nil {
			log.Println("failed to clear cart after submit:", err)
		}
		notifyClients(models.Notification{
			Event:    models.EventOrderSubmitted,
			Table_id: tableId,
			Order_id: order.Order_id,
			Payload:  order,
		})
		c.JSON(http.StatusOK, order)
	}
}

// CancelOrder cancels the table's active order and frees the table. It
// is idempotent: cancelling a table with no active order still forces
// the table free and clears any leftover cart.
func CancelOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		tableId := c.Param("table_id")

		cancelledID, err := orderAdapter.CancelOrder(ctx, tableId)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		if err := cartStore.Clear(ctx, tableId); err != nil {
			log.Println("failed to clear cart after cancel:", err)
		}
		notifyClients(models.Notification{
			Event:    models.EventOrderCancelled,
			Table_id: tableId,
			Order_id: cancelledID,
		})
		c.JSON(http.StatusOK, gin.H{
			"message":  "order cancelled",
			"order_id": cancelledID,
		})
	}
}
