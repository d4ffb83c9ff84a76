package services

// ServiceContainer holds every service facade for injection into the handlers.
type ServiceContainer struct {
	User        UserSvcFacade
	Session     SessionSvcFacade
	GithubOAuth GithubOAuthSvcFacade
	Note        NoteSvcFacade
	Coffee      CoffeeSvcFacade
	Cafe        CafeSvcFacade
}
