package mockapi

import "github.com/Tahancr42/parastore-frontend/internal/domain"

// Development accounts recognized by the mock login endpoint. Any password
// is accepted.
var devUsers = map[string]struct {
	UserID string
	Role   string
}{
	"client@parapharma.ma":  {UserID: "u-client-1", Role: domain.RoleClient},
	"manager@parapharma.ma": {UserID: "u-manager-1", Role: domain.RoleManager},
	"admin@parapharma.ma":   {UserID: "u-admin-1", Role: domain.RoleAdmin},
}

// Seed catalog, prices in MAD.
var seedProducts = []domain.Product{
	{ID: 1, Name: "Vitamine C 1000mg - Immunité", Price: 120.00, Description: "Vitamine C naturelle pour renforcer l'immunité et combattre la fatigue", ImageURL: "/vitamine.jpg", Category: "Compléments alimentaires et bien-être"},
	{ID: 2, Name: "Oméga-3 1000mg - Santé cardiovasculaire", Price: 180.00, Description: "Acides gras essentiels pour la santé du cœur et du cerveau", ImageURL: "/oenobiol.jpg", Category: "Compléments alimentaires et bien-être"},
	{ID: 3, Name: "Magnésium 400mg - Relaxation musculaire", Price: 95.00, Description: "Minéral essentiel pour la relaxation musculaire et la gestion du stress", ImageURL: "/zohi_sommeil.jpg", Category: "Compléments alimentaires et bien-être"},
	{ID: 4, Name: "Probiotiques 10 souches - Flore intestinale", Price: 220.00, Description: "Soutient la santé digestive et renforce le système immunitaire", ImageURL: "/oenobiol.jpg", Category: "Compléments alimentaires et bien-être"},
	{ID: 5, Name: "Collagène marin - Anti-âge", Price: 350.00, Description: "Préserve la jeunesse de la peau et la santé des articulations", ImageURL: "/serum_roche.jpg", Category: "Compléments alimentaires et bien-être"},
	{ID: 6, Name: "Lipikar Lait Urea 5+", Price: 226.00, Description: "La Roche-Posay Lipikar Lait Urea 5+ Peau Sensible Très Sèche | 400ml", ImageURL: "/lipikar.jpg", Category: "Soins du visage et de la peau"},
	{ID: 7, Name: "Bioderma Atoderm Intensive", Price: 220.00, Description: "BIODERMA ATODERM INTENSIVE Gel Crème 200 ML Ultra apaisant", ImageURL: "/atoderm_in.jpg", Category: "Soins du visage et de la peau"},
	{ID: 8, Name: "Vitamine D3 2000UI - Os et immunité", Price: 145.00, Description: "Vitamine D3 pour renforcer les os et le système immunitaire", ImageURL: "/vitamine.jpg", Category: "Compléments alimentaires et bien-être"},
	{ID: 9, Name: "Zinc 15mg - Défenses naturelles", Price: 88.00, Description: "Oligo-élément essentiel pour renforcer les défenses immunitaires", ImageURL: "/zohi_energie.jpg", Category: "Compléments alimentaires et bien-être"},
	{ID: 10, Name: "Sélénium 100mcg - Antioxydant", Price: 165.00, Description: "Antioxydant puissant pour protéger les cellules du stress oxydatif", ImageURL: "/oenobiol.jpg", Category: "Compléments alimentaires et bien-être"},
}
