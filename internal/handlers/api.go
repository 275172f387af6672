package handlers

import (
	"context"
	"log"

	"kirana_back_end/internal/accounts"
	"kirana_back_end/internal/cache"
	"kirana_back_end/internal/search"
	"kirana_back_end/internal/store"
)

// API regroupe les dépendances injectées dans les handlers : le conteneur
// d'état, l'index de recherche et l'authentificateur. Pas de singleton
// ambiant — tout est câblé dans main.
type API struct {
	Store    *store.Store
	Index    *search.Index
	Accounts accounts.Authenticator
}

func NewAPI(s *store.Store, idx *search.Index, auth accounts.Authenticator) *API {
	return &API{Store: s, Index: idx, Accounts: auth}
}

// persist pousse le snapshot vers Redis après une mutation. Best-effort :
// l'état en mémoire reste la source de vérité, un échec est logué et
// n'atteint jamais le client.
func (a *API) persist() {
	if err := cache.SaveSnapshot(context.Background(), a.Store.Snapshot()); err != nil {
		log.Printf("⚠️ Persistance du snapshot impossible: %v", err)
	}
}
