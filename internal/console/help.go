package console

var helpLines = []string{
	"Commands:",
	"  <category>, <name>, <quantity>, <price>   add a product to the menu",
	"                                            categories: salad, soup, main_course, dessert, drink",
	"  <table>, <product>[, <product>...]        place an order for a table (1-30)",
	"  sales                                     show the sales report",
	"  info <product>                            show quantity and calories of a product",
	"  categories                                list the menu categories",
	"  menu                                      list the menu",
	"  help | ? | commands                       show this list",
	"  exit                                      print the sales report and quit",
}
