package cli

func (a *App) commands() map[string]command {
	return map[string]command{
		"register": {usage: "register", help: "create an account", run: a.Register},
		"login":    {usage: "login", help: "sign in", run: a.Login},
		"logout":   {usage: "logout", help: "sign out", auth: true, run: a.Logout},
		"profile":  {usage: "profile", help: "show your profile", auth: true, run: a.Profile},
		"rename":   {usage: "rename", help: "change your username", auth: true, run: a.Rename},
		"passwd":   {usage: "passwd", help: "change your password", auth: true, run: a.ChangePassword},
		"avatar":   {usage: "avatar <image file>", help: "upload a profile picture", auth: true, run: a.Avatar},

		"search":    {usage: "search <query>", help: "search recipes (cached when offline)", run: a.Search},
		"more":      {usage: "more", help: "load the next page of results", run: a.More},
		"live":      {usage: "live", help: "search as you type", run: a.Live},
		"random":    {usage: "random [n]", help: "random recipes", run: a.Random},
		"show":      {usage: "show <id>", help: "show a recipe", run: a.Show},
		"recent":    {usage: "recent [n]", help: "recently viewed recipes", auth: true, run: a.Recent},
		"recommend": {usage: "recommend [ingredients...]", help: "suggest recipes", run: a.Recommend},

		"fav":       {usage: "fav <id>", help: "toggle a favorite", auth: true, run: a.Fav},
		"favorites": {usage: "favorites", help: "list favorites", run: a.Favorites},
		"sync":      {usage: "sync", help: "pull favorites from the server", auth: true, run: a.Sync},

		"comments":  {usage: "comments <id>", help: "list comments", auth: true, run: a.Comments},
		"comment":   {usage: "comment <id>", help: "add a comment", auth: true, run: a.Comment},
		"uncomment": {usage: "uncomment <id> <commentId>", help: "delete your comment", auth: true, run: a.Uncomment},
		"watch":     {usage: "watch <id>", help: "follow comments live", auth: true, run: a.Watch},

		"rate":    {usage: "rate <id>", help: "rate a recipe", auth: true, run: a.Rate},
		"ratings": {usage: "ratings <id>", help: "list ratings", auth: true, run: a.Ratings},

		"plan":   {usage: "plan <id>", help: "add a recipe to the meal plan", auth: true, run: a.Plan},
		"plans":  {usage: "plans [from] [to]", help: "show the meal calendar", auth: true, run: a.Plans},
		"unplan": {usage: "unplan <planId>", help: "remove a meal plan entry", auth: true, run: a.Unplan},

		"prune": {usage: "prune [days]", help: "drop stale cached recipes", run: a.Prune},
		"cache": {usage: "cache", help: "show cache statistics", run: a.CacheStats},
	}
}
