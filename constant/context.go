package constant

type ContextKey string

// AdminSessionKey carries the admin session id (jti) through request context.
const AdminSessionKey ContextKey = "admin_session_id"
