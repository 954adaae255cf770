package repoargs

type RepositoryName string

const (
	ClientRepoName            RepositoryName = "client"
	EstablishmentRepoName     RepositoryName = "establishment"
	ProductRepoName           RepositoryName = "product"
	OrderRepoName             RepositoryName = "order"
	PaymentRepoName           RepositoryName = "payment"
	PointsTransactionRepoName RepositoryName = "points_transaction"
)
