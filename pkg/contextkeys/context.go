package contextkeys

// Custom type avoids collisions with other context values.
type contextKey string

// DBContextKey holds the *gorm.DB (pool or per-request transaction) in context.
const DBContextKey = contextKey("db")
