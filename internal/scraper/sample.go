package scraper

import "time"

// SampleQuotes returns the first page of quotes.toscrape.com as static data,
// stamped with the given time. The demo command exports these without
// touching the network.
func SampleQuotes(now time.Time) []QuoteRecord {
	now = now.UTC()
	q := func(text, author string, tags ...string) QuoteRecord {
		if tags == nil {
			tags = []string{}
		}
		return QuoteRecord{Text: text, Author: author, Tags: tags, ScrapedAt: now}
	}
	return []QuoteRecord{
		q("“The world as we have created it is a process of our thinking. It cannot be changed without changing our thinking.”",
			"Albert Einstein", "change", "deep-thoughts", "thinking", "world"),
		q("“It is our choices, Harry, that show what we truly are, far more than our abilities.”",
			"J.K. Rowling", "abilities", "choices"),
		q("“There are only two ways to live your life. One is as though nothing is a miracle. The other is as though everything is a miracle.”",
			"Albert Einstein", "inspirational", "life", "live", "miracle", "miracles"),
		q("“The person, be it gentleman or lady, who has not pleasure in a good novel, must be intolerably stupid.”",
			"Jane Austen", "aliteracy", "books", "classic", "humor"),
		q("“Imperfection is beauty, madness is genius and it's better to be absolutely ridiculous than absolutely boring.”",
			"Marilyn Monroe", "be-yourself", "inspirational"),
		q("“Try not to become a man of success. Rather become a man of value.”",
			"Albert Einstein", "adulthood", "success", "value"),
		q("“It is better to be hated for what you are than to be loved for what you are not.”",
			"André Gide", "life", "love"),
		q("“I have not failed. I've just found 10,000 ways that won't work.”",
			"Thomas A. Edison", "edison", "failure", "inspirational", "paraphrased"),
		q("“A woman is like a tea bag; you never know how strong it is until it's in hot water.”",
			"Eleanor Roosevelt", "misattributed-eleanor-roosevelt"),
		q("“A day without sunshine is like, you know, night.”",
			"Steve Martin", "humor", "obvious", "simile"),
	}
}
