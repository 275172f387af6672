package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kirana_back_end/internal/models"
)

// scorer fixe pour des tests déterministes
type fixedScorer struct{ score int }

func (f fixedScorer) Score(productID, eventType string) int { return f.score }

func testCatalog() []models.Product {
	return []models.Product{
		{ID: "P1", Name: "Product 1", Category: "Category 1", Price: 10, Rating: 4.5, Stock: 15, SKU: "SKU1"},
		{ID: "P2", Name: "Product 2", Category: "Category 2", Price: 20, Rating: 4.7, Stock: 5, SKU: "SKU2"},
	}
}

func newTestStore() *Store {
	return New(testCatalog(), fixedScorer{score: 42})
}

func customer() models.User {
	return models.User{ID: "1", Email: "customer@test.com", Name: "John Customer", Role: models.RoleCustomer, LoyaltyPoints: 500}
}

// --- Panier ---

func TestAddToCartMergesQuantities(t *testing.T) {
	s := newTestStore()
	p1, _ := s.ProductByID("P1")

	s.AddToCart(p1, 2)
	s.AddToCart(p1, 3)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)
	assert.Equal(t, 10.0, cart[0].Price)
}

func TestAddToCartCapturesPriceAtAddTime(t *testing.T) {
	s := newTestStore()
	p1, _ := s.ProductByID("P1")

	s.AddToCart(p1, 1)
	p1.Price = 999 // le prix du catalogue bouge après coup
	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 10.0, cart[0].Price)
}

func TestCartNeverHoldsNonPositiveQuantities(t *testing.T) {
	s := newTestStore()
	p1, _ := s.ProductByID("P1")
	p2, _ := s.ProductByID("P2")

	s.AddToCart(p1, 2)
	s.AddToCart(p2, 1)
	s.UpdateCartQuantity("P1", 0)  // équivaut à une suppression
	s.UpdateCartQuantity("P2", -5) // idem
	s.AddToCart(p1, 0)             // ignoré
	s.AddToCart(p1, -1)            // ignoré

	for _, item := range s.Cart() {
		assert.Greater(t, item.Quantity, 0)
	}
	assert.Empty(t, s.Cart())
}

func TestUpdateCartQuantityOverwrites(t *testing.T) {
	s := newTestStore()
	p1, _ := s.ProductByID("P1")

	s.AddToCart(p1, 2)
	s.UpdateCartQuantity("P1", 7)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 7, cart[0].Quantity)

	// produit absent : no-op
	s.UpdateCartQuantity("PX", 3)
	assert.Len(t, s.Cart(), 1)
}

func TestRemoveFromCartUnknownProductIsNoop(t *testing.T) {
	s := newTestStore()
	p1, _ := s.ProductByID("P1")
	s.AddToCart(p1, 1)
	s.RemoveFromCart("PX")
	assert.Len(t, s.Cart(), 1)
}

// --- Commandes ---

func TestCreateOrderTotalLaw(t *testing.T) {
	// sous-total 1000, TVA round(180), 20 points → remise floor(0.2×1000)=200
	s := newTestStore()
	s.Login(customer())
	s.AddToCart(models.Product{ID: "P1", Price: 10}, 100)

	order, err := s.CreateOrder("12 Market Street", 20)
	require.NoError(t, err)
	assert.Equal(t, 980.0, order.Total)
	assert.Equal(t, 20, order.LoyaltyPointsUsed)
	assert.Equal(t, 480, s.LoyaltyBalance())
}

func TestCreateOrderEndToEnd(t *testing.T) {
	s := newTestStore()
	s.Login(customer())
	p1, _ := s.ProductByID("P1")
	s.AddToCart(p1, 2)

	require.Equal(t, []models.CartItem{{ProductID: "P1", Quantity: 2, Price: 10}}, s.Cart())

	order, err := s.CreateOrder("X", 0)
	require.NoError(t, err)

	// total = 20 + round(3.6) = 24
	assert.Equal(t, 24.0, order.Total)
	assert.Equal(t, models.StatusPlaced, order.Status)
	assert.Equal(t, "1", order.UserID)
	assert.Empty(t, s.Cart())
	assert.Len(t, s.Orders(), 1)
}

func TestCreateOrderFailsOnEmptyCartAfterFirstCall(t *testing.T) {
	s := newTestStore()
	s.Login(customer())
	p1, _ := s.ProductByID("P1")
	s.AddToCart(p1, 1)

	_, err := s.CreateOrder("X", 0)
	require.NoError(t, err)

	order, err := s.CreateOrder("X", 0)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Len(t, s.Orders(), 1)
}

func TestCreateOrderPreconditions(t *testing.T) {
	s := newTestStore()
	p1, _ := s.ProductByID("P1")

	// pas connecté
	s.AddToCart(p1, 1)
	_, err := s.CreateOrder("X", 0)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	// points > solde : état inchangé
	s.Login(customer())
	s.AddToCart(p1, 1)
	_, err = s.CreateOrder("X", 501)
	assert.ErrorIs(t, err, ErrInsufficientPts)
	assert.NotEmpty(t, s.Cart())
	assert.Equal(t, 500, s.LoyaltyBalance())
}

func TestCreateOrderTotalFlooredAtZero(t *testing.T) {
	s := newTestStore()
	s.Login(customer())
	s.AddToCart(models.Product{ID: "P1", Price: 1}, 1)

	// remise floor(5.0×1) = 5 > 1 + round(0.18) → total plancher 0
	order, err := s.CreateOrder("X", 500)
	require.NoError(t, err)
	assert.Equal(t, 0.0, order.Total)
}

func TestUpdateOrderStatusForwardOnly(t *testing.T) {
	s := newTestStore()
	s.Login(customer())
	p1, _ := s.ProductByID("P1")
	s.AddToCart(p1, 1)
	order, err := s.CreateOrder("X", 0)
	require.NoError(t, err)

	// saut interdit
	assert.ErrorIs(t, s.UpdateOrderStatus(order.ID, models.StatusOTD), ErrBadTransition)

	require.NoError(t, s.UpdateOrderStatus(order.ID, models.StatusPacked))
	require.NoError(t, s.UpdateOrderStatus(order.ID, models.StatusOTD))

	// retour en arrière interdit
	assert.ErrorIs(t, s.UpdateOrderStatus(order.ID, models.StatusPacked), ErrBadTransition)

	require.NoError(t, s.UpdateOrderStatus(order.ID, models.StatusDelivered))
	got, ok := s.OrderByID(order.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusDelivered, got.Status)

	// statut inconnu, commande inconnue
	assert.ErrorIs(t, s.UpdateOrderStatus(order.ID, "Expédiée"), ErrBadTransition)
	assert.ErrorIs(t, s.UpdateOrderStatus("ORD-0", models.StatusPacked), ErrUnknownOrder)
}

// --- Fidélité ---

func TestUseLoyaltyPoints(t *testing.T) {
	s := newTestStore()
	s.Login(customer())

	assert.True(t, s.UseLoyaltyPoints(500))
	assert.Equal(t, 0, s.LoyaltyBalance())

	assert.False(t, s.UseLoyaltyPoints(1))
	assert.Equal(t, 0, s.LoyaltyBalance())
}

func TestAddLoyaltyPointsNeverGoesNegative(t *testing.T) {
	s := newTestStore()
	s.Login(models.User{ID: "1", LoyaltyPoints: 10})

	s.AddLoyaltyPoints(5)
	assert.Equal(t, 15, s.LoyaltyBalance())

	// delta négatif routé par la variante gardée : refusé, solde intact
	s.AddLoyaltyPoints(-100)
	assert.Equal(t, 15, s.LoyaltyBalance())

	s.AddLoyaltyPoints(-15)
	assert.Equal(t, 0, s.LoyaltyBalance())
}

// --- Inventaire ---

func TestUpdateInventoryOverwriteLaw(t *testing.T) {
	s := newTestStore()

	for _, q := range []int{0, 1, 7, 100} {
		require.NoError(t, s.UpdateInventory("P1", q))
		got, ok := s.InventoryQuantity("P1")
		require.True(t, ok)
		assert.Equal(t, q, got)
	}

	assert.ErrorIs(t, s.UpdateInventory("P1", -1), ErrNegativeQuantity)
}

func TestCheckLowStock(t *testing.T) {
	s := New([]models.Product{
		{ID: "P1", Stock: 15},
		{ID: "P2", Stock: 5},
	}, fixedScorer{})

	assert.Equal(t, []string{"P2"}, s.CheckLowStock())
	assert.Equal(t, []string{"P2"}, s.LowStockAlerts())

	// exactement sous le seuil : 9 dedans, 10 dehors
	require.NoError(t, s.UpdateInventory("P1", 9))
	require.NoError(t, s.UpdateInventory("P2", 10))
	assert.Equal(t, []string{"P1"}, s.CheckLowStock())
}

// --- POS ---

func TestRecordSaleDeductsStockAndEarnsPoints(t *testing.T) {
	s := newTestStore()
	s.Login(customer())

	items := []models.CartItem{
		{ProductID: "P1", Quantity: 3, Price: 10},
		{ProductID: "P2", Quantity: 2, Price: 20},
	}
	receipt, err := s.RecordSale(items, 0)
	require.NoError(t, err)

	// les points se gagnent sur le total encaissé : floor(83/10) = 8
	assert.Equal(t, 70.0, receipt.Subtotal)
	assert.Equal(t, 13.0, receipt.Tax) // round(12.6)
	assert.Equal(t, 83.0, receipt.Total)
	assert.Equal(t, 8, receipt.PointsEarned)
	assert.Equal(t, 508, s.LoyaltyBalance())

	q1, _ := s.InventoryQuantity("P1")
	q2, _ := s.InventoryQuantity("P2")
	assert.Equal(t, 12, q1)
	assert.Equal(t, 3, q2)
}

func TestRecordSaleRejectsInsufficientStock(t *testing.T) {
	s := newTestStore()
	s.Login(customer())

	_, err := s.RecordSale([]models.CartItem{
		{ProductID: "P1", Quantity: 1, Price: 10},
		{ProductID: "P2", Quantity: 6, Price: 20}, // stock = 5
	}, 0)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// refus en bloc : rien n'a bougé
	q1, _ := s.InventoryQuantity("P1")
	assert.Equal(t, 15, q1)
	assert.Equal(t, 500, s.LoyaltyBalance())
}

func TestRecordSaleValidatesDuplicateLinesAsSum(t *testing.T) {
	s := newTestStore()
	s.Login(customer())

	// deux lignes de 3 sur P2 (stock 5) : chacune passerait seule, le
	// cumul non — la vente est refusée et le stock reste positif
	_, err := s.RecordSale([]models.CartItem{
		{ProductID: "P2", Quantity: 3, Price: 20},
		{ProductID: "P2", Quantity: 3, Price: 20},
	}, 0)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	q2, _ := s.InventoryQuantity("P2")
	assert.Equal(t, 5, q2)

	// le cumul qui tient dans le stock passe, lignes séparées ou non
	receipt, err := s.RecordSale([]models.CartItem{
		{ProductID: "P2", Quantity: 2, Price: 20},
		{ProductID: "P2", Quantity: 3, Price: 20},
	}, 0)
	require.NoError(t, err)
	require.Len(t, receipt.Movements, 2)

	q2, _ = s.InventoryQuantity("P2")
	assert.Equal(t, 0, q2)
}

func TestRecordSaleRedeemsPointsGuarded(t *testing.T) {
	s := newTestStore()
	s.Login(customer())

	items := []models.CartItem{{ProductID: "P1", Quantity: 10, Price: 10}}

	_, err := s.RecordSale(items, 501)
	assert.ErrorIs(t, err, ErrInsufficientPts)

	receipt, err := s.RecordSale(items, 100)
	require.NoError(t, err)
	// sous-total 100, TVA 18, remise floor(1×100) = 100
	assert.Equal(t, 18.0, receipt.Total)
	assert.Equal(t, 1, receipt.PointsEarned)
	// 500 − 100 échangés + floor(18/10) gagnés
	assert.Equal(t, 401, s.LoyaltyBalance())
}

// --- Audit de stock ---

func TestSubmitAuditOverwritesSystemStock(t *testing.T) {
	s := newTestStore()

	report, err := s.SubmitAudit(map[string]int{"P1": 12, "P2": 5})
	require.NoError(t, err)
	require.Len(t, report, 2)

	assert.Equal(t, models.AuditDiscrepancy{ProductID: "P1", SystemStock: 15, PhysicalCount: 12, Discrepancy: -3}, report[0])
	assert.Equal(t, models.AuditDiscrepancy{ProductID: "P2", SystemStock: 5, PhysicalCount: 5, Discrepancy: 0}, report[1])

	q1, _ := s.InventoryQuantity("P1")
	assert.Equal(t, 12, q1)

	_, err = s.SubmitAudit(map[string]int{"P1": -1})
	assert.ErrorIs(t, err, ErrNegativeQuantity)
}

// --- Événements suspects ---

func TestAddSuspiciousEventUsesInjectedScorer(t *testing.T) {
	s := newTestStore()

	e1 := s.AddSuspiciousEvent("P1", "Unusual Pattern")
	e2 := s.AddSuspiciousEvent("P1", "Frequent Returns")

	assert.Equal(t, 42, e1.Score)
	assert.NotEqual(t, e1.ID, e2.ID)

	events := s.SuspiciousEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "Unusual Pattern", events[0].Type)
	assert.Equal(t, "Frequent Returns", events[1].Type)
}

// --- Session ---

func TestLogoutClearsSessionButKeepsLedgers(t *testing.T) {
	s := newTestStore()
	s.Login(customer())
	p1, _ := s.ProductByID("P1")
	s.AddToCart(p1, 1)
	_, err := s.CreateOrder("X", 0)
	require.NoError(t, err)
	s.AddToCart(p1, 2)
	require.NoError(t, s.UpdateInventory("P1", 99))

	s.Logout()

	assert.Nil(t, s.CurrentUser())
	assert.Empty(t, s.Cart())
	assert.Equal(t, 0, s.LoyaltyBalance())
	assert.Len(t, s.Orders(), 1)
	q, _ := s.InventoryQuantity("P1")
	assert.Equal(t, 99, q)
}

// --- Snapshot ---

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := newTestStore()
	s.Login(customer())
	p1, _ := s.ProductByID("P1")
	s.AddToCart(p1, 2)
	_, err := s.CreateOrder("X", 100)
	require.NoError(t, err)
	s.AddToCart(p1, 3)
	s.AddSuspiciousEvent("P2", "Multiple Removals")
	s.CheckLowStock()

	snap := s.Snapshot()
	assert.Equal(t, SnapshotVersion, snap.Version)

	restored := New(testCatalog(), fixedScorer{score: 42})
	require.NoError(t, restored.Restore(snap))

	assert.Equal(t, s.Cart(), restored.Cart())
	assert.Equal(t, s.Orders(), restored.Orders())
	assert.Equal(t, s.LoyaltyBalance(), restored.LoyaltyBalance())
	assert.Equal(t, s.Inventory(), restored.Inventory())
	assert.Equal(t, s.LowStockAlerts(), restored.LowStockAlerts())
	assert.Equal(t, s.SuspiciousEvents(), restored.SuspiciousEvents())
}

func TestRestoreRejectsUnknownVersion(t *testing.T) {
	s := newTestStore()
	err := s.Restore(Snapshot{Version: 99})
	assert.Error(t, err)
}
