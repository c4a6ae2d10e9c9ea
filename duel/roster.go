package duel

import "github.com/furk4ng99/fenerbahce-squad-builder/models"

// Roster is the static legend pool used by the duel arena and the
// tournament. It is compiled in and never mutated at runtime.
var Roster = []models.DuelPlayer{
	// Legends
	{ID: "alex-de-souza", Name: "Alex de Souza", Image: "/data/fenerbahce-oyuncular/Alex de Souza, Fenerbahce.jpeg", Position: "CAM", Era: "2000s", Apps: 222, Goals: 22, Trophies: 5, Category: models.CategoryLegends},
	{ID: "lefter", Name: "Lefter Küçükandonyadis", Image: "/data/fenerbahce-oyuncular/lefter.jpeg", Position: "FW", Era: "1950s", Apps: 214, Goals: 104, Trophies: 3, Category: models.CategoryLegends},
	{ID: "ridvan-dilmen", Name: "Rıdvan Dilmen", Image: "/data/fenerbahce-oyuncular/ridvan dilmen.jpeg", Position: "AM", Era: "1980s", Apps: 133, Goals: 25, Trophies: 2, Category: models.CategoryLegends},
	{ID: "aykut-kocaman", Name: "Aykut Kocaman", Image: "/data/fenerbahce-oyuncular/Aykut Kocaman.jpeg", Position: "ST", Era: "1990s", Apps: 196, Goals: 96, Trophies: 2, Category: models.CategoryLegends},
	{ID: "oguz-cetin", Name: "Oğuz Çetin", Image: "/data/fenerbahce-oyuncular/oguz cetin.jpeg", Position: "DM", Era: "1990s", Apps: 241, Goals: 17, Trophies: 2, Category: models.CategoryLegends},
	{ID: "emre-belozoglu", Name: "Emre Belözoğlu", Image: "/data/fenerbahce-oyuncular/emre belozoglu.jpeg", Position: "CM", Era: "2000s", Apps: 187, Goals: 21, Trophies: 4, Category: models.CategoryLegends},

	// Strikers
	{ID: "pierre-van-hooijdonk", Name: "Pierre van Hooijdonk", Image: "/data/fenerbahce-oyuncular/Pierre van Hooijdonk.jpeg", Position: "ST", Era: "2000s", Apps: 71, Goals: 41, Trophies: 2, Category: models.CategoryStrikers},
	{ID: "elvir-bolic", Name: "Elvir Bolić", Image: "/data/fenerbahce-oyuncular/Elvir Boliç.jpeg", Position: "ST", Era: "1990s", Apps: 102, Goals: 54, Trophies: 1, Category: models.CategoryStrikers},
	{ID: "robin-van-persie", Name: "Robin van Persie", Image: "/data/fenerbahce-oyuncular/Robin van Persie - Fenerbahçe SK.jpeg", Position: "ST", Era: "2010s", Apps: 62, Goals: 24, Trophies: 1, Category: models.CategoryStrikers},
	{ID: "moussa-sow", Name: "Moussa Sow", Image: "/data/fenerbahce-oyuncular/Moussa Sow.jpeg", Position: "ST", Era: "2010s", Apps: 129, Goals: 57, Trophies: 2, Category: models.CategoryStrikers},
	{ID: "anelka", Name: "Nicolas Anelka", Image: "/data/fenerbahce-oyuncular/anelka.jpeg", Position: "ST", Era: "2000s", Apps: 50, Goals: 22, Trophies: 1, Category: models.CategoryStrikers},
	{ID: "dzeko", Name: "Edin Džeko", Image: "/data/fenerbahce-oyuncular/Dzeko¹⁹⁰⁷.jpeg", Position: "ST", Era: "2020s", Apps: 68, Goals: 33, Trophies: 1, Category: models.CategoryStrikers},
	{ID: "tuncay-sanli", Name: "Tuncay Şanlı", Image: "/data/fenerbahce-oyuncular/tuncay sanli.jpeg", Position: "ST", Era: "2000s", Apps: 145, Goals: 52, Trophies: 3, Category: models.CategoryStrikers},

	// Midfielders
	{ID: "jay-jay-okocha", Name: "Jay-Jay Okocha", Image: "/data/fenerbahce-oyuncular/Jay-Jay Okocha.jpeg", Position: "AM", Era: "1990s", Apps: 62, Goals: 23, Trophies: 1, Category: models.CategoryMidfielders},
	{ID: "stephen-appiah", Name: "Stephen Appiah", Image: "/data/fenerbahce-oyuncular/Stephen Appiah.jpeg", Position: "CM", Era: "2000s", Apps: 73, Goals: 9, Trophies: 2, Category: models.CategoryMidfielders},
	{ID: "dirk-kuyt", Name: "Dirk Kuyt", Image: "/data/fenerbahce-oyuncular/Dirk Kuyt.jpeg", Position: "RW", Era: "2010s", Apps: 104, Goals: 22, Trophies: 2, Category: models.CategoryMidfielders},
	{ID: "nani", Name: "Nani", Image: "/data/fenerbahce-oyuncular/Nani.jpeg", Position: "LW", Era: "2010s", Apps: 55, Goals: 12, Trophies: 1, Category: models.CategoryMidfielders},
	{ID: "mehmet-topal", Name: "Mehmet Topal", Image: "/data/fenerbahce-oyuncular/Mehmet Topal.jpeg", Position: "DM", Era: "2010s", Apps: 219, Goals: 14, Trophies: 3, Category: models.CategoryMidfielders},
	{ID: "szymanski", Name: "Sebastian Szymański", Image: "/data/fenerbahce-oyuncular/szymanski.jpeg", Position: "AM", Era: "2020s", Apps: 84, Goals: 18, Trophies: 1, Category: models.CategoryMidfielders},
	{ID: "tadic", Name: "Dušan Tadić", Image: "/data/fenerbahce-oyuncular/tadic.jpeg", Position: "LW", Era: "2020s", Apps: 97, Goals: 21, Trophies: 1, Category: models.CategoryMidfielders},
	{ID: "ismail-yuksek", Name: "İsmail Yüksek", Image: "/data/fenerbahce-oyuncular/ismail yuksek.jpeg", Position: "CM", Era: "2020s", Apps: 112, Goals: 4, Trophies: 1, Category: models.CategoryMidfielders},
	{ID: "arda-guler", Name: "Arda Güler", Image: "/data/fenerbahce-oyuncular/arda guler.jpeg", Position: "AM", Era: "2020s", Apps: 57, Goals: 9, Trophies: 2, Category: models.CategoryMidfielders},
	{ID: "kerem-akturkoglu", Name: "Kerem Aktürkoğlu", Image: "/data/fenerbahce-oyuncular/kerem-akturkoglu.jpeg", Position: "LW", Era: "2020s", Apps: 61, Goals: 16, Trophies: 2, Category: models.CategoryMidfielders},
	{ID: "asensio", Name: "Marco Asensio", Image: "/data/fenerbahce-oyuncular/asensio.jpeg", Position: "RW", Era: "2020s", Apps: 53, Goals: 11, Trophies: 1, Category: models.CategoryMidfielders},

	// Defenders
	{ID: "roberto-carlos", Name: "Roberto Carlos", Image: "/data/fenerbahce-oyuncular/Roberto Carlos.jpeg", Position: "LB", Era: "2000s", Apps: 74, Goals: 10, Trophies: 1, Category: models.CategoryDefenders},
	{ID: "diego-lugano", Name: "Diego Lugano", Image: "/data/fenerbahce-oyuncular/Diego Lugano.jpeg", Position: "CB", Era: "2000s", Apps: 174, Goals: 12, Trophies: 3, Category: models.CategoryDefenders},
	{ID: "joseph-yobo", Name: "Joseph Yobo", Image: "/data/fenerbahce-oyuncular/Joseph Yobo.jpeg", Position: "CB", Era: "2000s", Apps: 129, Goals: 5, Trophies: 2, Category: models.CategoryDefenders},
	{ID: "uche-okechukwu", Name: "Uche Okechukwu", Image: "/data/fenerbahce-oyuncular/Uche Okechukwu.jpeg", Position: "CB", Era: "1990s", Apps: 199, Goals: 8, Trophies: 2, Category: models.CategoryDefenders},
	{ID: "gokhan-gonul", Name: "Gökhan Gönül", Image: "/data/fenerbahce-oyuncular/Gökhan Gönül Fenerbahçe.jpeg", Position: "RB", Era: "2010s", Apps: 242, Goals: 7, Trophies: 4, Category: models.CategoryDefenders},
	{ID: "caner-erkin", Name: "Caner Erkin", Image: "/data/fenerbahce-oyuncular/Caner Erkin.jpeg", Position: "LB", Era: "2010s", Apps: 221, Goals: 15, Trophies: 4, Category: models.CategoryDefenders},
	{ID: "kim-min-jae", Name: "Kim Min-Jae", Image: "/data/fenerbahce-oyuncular/Fenerbahçe-Kim-Min-Jae.jpeg", Position: "CB", Era: "2020s", Apps: 45, Goals: 2, Trophies: 1, Category: models.CategoryDefenders},
	{ID: "ferdi-kadioglu", Name: "Ferdi Kadıoğlu", Image: "/data/fenerbahce-oyuncular/Ferdi Kadıoğlu Wallpaper.jpeg", Position: "LB", Era: "2020s", Apps: 165, Goals: 8, Trophies: 1, Category: models.CategoryDefenders},
	{ID: "jayden-oosterwolde", Name: "Jayden Oosterwolde", Image: "/data/fenerbahce-oyuncular/Jayden Oosterwolde 💪🏻.jpeg", Position: "LB", Era: "2020s", Apps: 78, Goals: 3, Trophies: 1, Category: models.CategoryDefenders},
	{ID: "skriniar", Name: "Milan Škriniar", Image: "/data/fenerbahce-oyuncular/skriniar.jpeg", Position: "CB", Era: "2020s", Apps: 38, Goals: 2, Trophies: 1, Category: models.CategoryDefenders},

	// Goalkeepers
	{ID: "volkan-demirel", Name: "Volkan Demirel", Image: "/data/fenerbahce-oyuncular/Volkan Demirel 💪🏻.jpeg", Position: "GK", Era: "2000s", Apps: 249, Goals: 0, Trophies: 4, Category: models.CategoryGoalkeepers},
	{ID: "toni-schumacher", Name: "Toni Schumacher", Image: "/data/fenerbahce-oyuncular/Toni Schumacher.jpeg", Position: "GK", Era: "1980s", Apps: 63, Goals: 0, Trophies: 1, Category: models.CategoryGoalkeepers},

	// Later additions
	{ID: "cristian-baroni", Name: "Cristian Baroni", Image: "/data/fenerbahce-oyuncular/Cristian Baroni Fenerbahçe.jpeg", Position: "LB", Era: "2000s", Apps: 158, Goals: 19, Trophies: 3, Category: models.CategoryDefenders},
	{ID: "andre-santos", Name: "André Santos", Image: "/data/fenerbahce-oyuncular/Andre do Santos _ Brezilya (2009-2011).jpeg", Position: "LB", Era: "2000s", Apps: 64, Goals: 5, Trophies: 1, Category: models.CategoryDefenders},
	{ID: "david-de-souza", Name: "David de Souza", Image: "/data/fenerbahce-oyuncular/David De Souza.jpeg", Position: "CM", Era: "2000s", Apps: 92, Goals: 11, Trophies: 2, Category: models.CategoryMidfielders},
	{ID: "ismail-kartal", Name: "İsmail Kartal", Image: "/data/fenerbahce-oyuncular/Ismail Kartal.jpeg", Position: "DM", Era: "1990s", Apps: 134, Goals: 6, Trophies: 1, Category: models.CategoryLegends},
	{ID: "cristian", Name: "Cristian Oliveira", Image: "/data/fenerbahce-oyuncular/Cristian Baroni Fenerbahçe.jpeg", Position: "AM", Era: "2010s", Apps: 186, Goals: 24, Trophies: 3, Category: models.CategoryMidfielders},
}

// RosterByID returns the roster entry with the given id.
func RosterByID(id string) (models.DuelPlayer, bool) {
	for _, p := range Roster {
		if p.ID == id {
			return p, true
		}
	}
	return models.DuelPlayer{}, false
}
