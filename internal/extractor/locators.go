package extractor

// Known layout variants of the Ozon product page. The first candidate of the
// price fields matches the standard price block, the second one the sale
// banner layout.
var (
	// Price is the field with the product's current price.
	Price = Field{
		Name: "price",
		Candidates: []Locator{
			{By: ByXPath, Query: "/html/body/div[1]/div/div[1]/div[3]/div[3]/div[2]/div/div/div[1]/div[2]/div/div[1]/div/div/div[1]/div[2]/div/div[1]/span[1]"},
			{By: ByXPath, Query: "/html/body/div[1]/div/div[1]/div[3]/div[3]/div[2]/div/div/div[1]/div[3]/div/div[1]/div/div/div[1]/div[1]/button/span/div/div[1]/div/div/span"},
		},
	}

	// CardPrice is the field with the loyalty-card price.
	CardPrice = Field{
		Name: "card_price",
		Candidates: []Locator{
			{By: ByXPath, Query: "/html/body/div[1]/div/div[1]/div[3]/div[3]/div[2]/div/div/div[1]/div[2]/div/div[1]/div/div/div[1]/div[1]/button/span/div/div[1]/div/div/span"},
			{By: ByXPath, Query: "/html/body/div[1]/div/div[1]/div[3]/div[3]/div[2]/div/div/div[1]/div[3]/div/div[1]/div/div/div[1]/div[1]/button/span/div/div[1]/div/div/span"},
		},
	}

	// OriginalPrice is the field with the pre-discount reference price.
	OriginalPrice = Field{
		Name: "original_price",
		Candidates: []Locator{
			{By: ByXPath, Query: "/html/body/div[1]/div/div[1]/div[3]/div[3]/div[2]/div/div/div[1]/div[2]/div/div[1]/div/div/div[1]/div[2]/div/div[1]/span[2]"},
			{By: ByXPath, Query: "/html/body/div[1]/div/div[1]/div[3]/div[3]/div[2]/div/div/div[1]/div[3]/div/div[1]/div/div/div[1]/div[2]/div/div[1]/span[2]"},
		},
	}

	// Rating is the field with the product rating label.
	Rating = Field{
		Name: "rating",
		Candidates: []Locator{
			{By: ByXPath, Query: "/html/body/div[1]/div/div[1]/div[3]/div[3]/div[1]/div[1]/div[2]/div/div/div/div[2]/div[1]/a/div"},
		},
	}

	// QuestionsCount is the field with the questions counter label.
	QuestionsCount = Field{
		Name: "questions_count",
		Candidates: []Locator{
			{By: ByXPath, Query: "/html/body/div[1]/div/div[1]/div[3]/div[3]/div[1]/div[1]/div[2]/div/div/div/div[2]/div[2]/a/div"},
		},
	}

	// ReviewsCount is the field with the combined rating/reviews label.
	ReviewsCount = Field{
		Name: "reviews_count",
		Candidates: []Locator{
			{By: ByXPath, Query: "/html/body/div[1]/div/div[1]/div[3]/div[3]/div[1]/div[1]/div[2]/div/div/div/div[2]/div[1]/a/div"},
		},
	}
)

// ProductFields lists every field extracted from a product page, in extraction order.
var ProductFields = []Field{Price, CardPrice, OriginalPrice, Rating, QuestionsCount, ReviewsCount}
