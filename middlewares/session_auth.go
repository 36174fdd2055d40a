package middlewares

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/AmpereProcessos/crm-ampere-pro-sub000/database"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/schemas"
	"github.com/AmpereProcessos/crm-ampere-pro-sub000/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type contextKey string

const IdentityContextKey = contextKey("session_identity")

const SESSION_COOKIE = "sid"

// Identity carrega o usuário resolvido da sessão e seus escopos de
// visibilidade. Escopo nil significa acesso irrestrito à dimensão.
type Identity struct {
	IDUsuario       string
	Nome            string
	EscopoParceiros *[]string
	EscopoUsuarios  *[]string
}

func SessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SESSION_COOKIE)
		if err != nil || cookie.Value == "" {
			utils.SendResponse(w, http.StatusUnauthorized, "Sessão não informada", nil, 0)
			return
		}

		sessionID, err := bson.ObjectIDFromHex(cookie.Value)
		if err != nil {
			utils.SendResponse(w, http.StatusUnauthorized, "Sessão inválida", nil, 0)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
		defer cancel()

		mongoURI := os.Getenv(utils.MONGODB_URI)
		client, err := mongo.Connect(options.Client().ApplyURI(mongoURI))
		if err != nil {
			utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
			return
		}
		defer client.Disconnect(ctx)

		db := client.Database(database.GetDB())

		var session schemas.Session
		if err := db.Collection(database.COLLECTION_SESSIONS).
			FindOne(ctx, bson.M{"_id": sessionID}).Decode(&session); err != nil {
			utils.SendResponse(w, http.StatusUnauthorized, "Sessão não encontrada", nil, 0)
			return
		}

		if !session.DataExpiracao.IsZero() && session.DataExpiracao.Before(time.Now()) {
			utils.SendResponse(w, http.StatusUnauthorized, "Sessão expirada", nil, 0)
			return
		}

		var user schemas.User
		if err := db.Collection(database.COLLECTION_USERS).
			FindOne(ctx, bson.M{"_id": session.IDUsuario}).Decode(&user); err != nil {
			utils.SendResponse(w, http.StatusUnauthorized, "Usuário da sessão não encontrado", nil, 0)
			return
		}

		identity := Identity{
			IDUsuario:       user.ID.Hex(),
			Nome:            user.Nome,
			EscopoParceiros: user.EscopoParceiros,
			EscopoUsuarios:  user.EscopoUsuarios,
		}

		reqCtx := context.WithValue(r.Context(), IdentityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}
