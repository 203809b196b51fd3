// SPDX-License-Identifier: MIT

// Package dashboard holds the hardcoded sample content of the academy dashboard preview.
package dashboard

// Tab is one section of the dashboard
type Tab string

const (
	TabOverview Tab = "overview"
	TabCourses  Tab = "courses"
	TabVideos   Tab = "videos"
	TabTrading  Tab = "trading"
	TabCart     Tab = "cart"
	TabCalendar Tab = "calendar"
	TabChat     Tab = "chat"
	TabProfile  Tab = "profile"
)

var tabLabels = map[Tab]string{
	TabOverview: "Overview",
	TabCourses:  "Courses",
	TabVideos:   "Videos",
	TabTrading:  "Trading",
	TabCart:     "Cart",
	TabCalendar: "Calendar",
	TabChat:     "Chat",
	TabProfile:  "Profile",
}

// Tabs returns the tabs in navigation order
func Tabs() []Tab {
	return []Tab{TabOverview, TabCourses, TabVideos, TabTrading, TabCart, TabCalendar, TabChat, TabProfile}
}

// ParseTab returns the named tab, falling back to the overview
func ParseTab(s string) Tab {
	if _, ok := tabLabels[Tab(s)]; ok {
		return Tab(s)
	}
	return TabOverview
}

// Label is the navigation caption of a tab
func (t Tab) Label() string {
	return tabLabels[t]
}

type Course struct {
	Title         string
	Instructor    string
	Level         string
	Price         int
	OriginalPrice int
	Lessons       int
	Duration      string
	Rating        float64
	Students      string
}

// Discount is the saving against the original price
func (c Course) Discount() int {
	return c.OriginalPrice - c.Price
}

type Video struct {
	Title      string
	Duration   string
	Views      string
	Instructor string
}

type Ticker struct {
	Coin     string
	Price    string
	Change   string
	Positive bool
}

type Trade struct {
	Pair   string
	Side   string
	Amount float64
	Price  float64
	Time   string
	PnL    string
}

// Value is the notional size of the trade
func (t Trade) Value() float64 {
	return t.Amount * t.Price
}

type CartItem struct {
	ID       int
	Title    string
	Price    int
	Quantity int
}

// Subtotal is price times quantity
func (i CartItem) Subtotal() int {
	return i.Price * i.Quantity
}

// CartTotal sums the subtotals of items
func CartTotal(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

type Event struct {
	Time  string
	Title string
	Kind  string
}

type Message struct {
	User string
	Text string
	Time string
	Own  bool
}

type Topic struct {
	Title   string
	Replies int
	Author  string
	Age     string
}

type Activity struct {
	Action string
	Item   string
	Age    string
}

type Profile struct {
	Name           string
	Email          string
	Plan           string
	CoursesDone    int
	Certificates   int
	StudyHours     int
	RecentActivity []Activity
}

// Content is everything the dashboard page shows besides the palette
type Content struct {
	Courses []Course
	Videos  []Video
	Tickers []Ticker
	Trades  []Trade
	Cart    []CartItem
	Events  []Event
	Chat    []Message
	Topics  []Topic
	Profile Profile
}

// CartTotal sums the cart of the sample content
func (c Content) CartTotal() int {
	return CartTotal(c.Cart)
}

// Sample returns a fresh copy of the sample content
func Sample() Content {
	return Content{
		Courses: []Course{
			{"Crypto from A to Z", "Oleksandr Petrenko", "Beginner", 99, 149, 15, "8 hours", 4.9, "12.5k"},
			{"Bitcoin Technical Analysis", "Maria Kovalenko", "Intermediate", 199, 299, 22, "12 hours", 4.8, "8.9k"},
			{"DeFi and Passive Income", "Ivan Melnyk", "Advanced", 299, 399, 28, "16 hours", 4.9, "5.8k"},
			{"Algorithmic Trading", "Anna Sydorenko", "Expert", 499, 699, 35, "24 hours", 4.9, "3.2k"},
			{"NFT: Creating and Trading", "Viktor Lebediev", "Intermediate", 179, 249, 18, "10 hours", 4.7, "9.1k"},
			{"Ethereum Smart Contracts", "Dmytro Shevchenko", "Advanced", 399, 549, 30, "20 hours", 4.8, "4.7k"},
		},
		Videos: []Video{
			{"What is cryptocurrency?", "15:30", "12.5k", "Oleksandr P."},
			{"Reading charts", "22:45", "8.9k", "Maria K."},
			{"Risk management", "18:20", "15.2k", "Ivan M."},
			{"DeFi protocols", "28:15", "7.8k", "Anna S."},
		},
		Tickers: []Ticker{
			{"BTC", "$43,250", "+2.5%", true},
			{"ETH", "$2,650", "+1.8%", true},
			{"BNB", "$315", "-0.5%", false},
			{"ADA", "$0.48", "+3.2%", true},
			{"SOL", "$85", "+5.1%", true},
			{"DOT", "$6.2", "-1.2%", false},
		},
		Trades: []Trade{
			{"BTC/USDT", "BUY", 0.05, 42850, "10:30", "+$67.50"},
			{"ETH/USDT", "SELL", 1.2, 2680, "09:15", "+$45.20"},
			{"BNB/USDT", "BUY", 15, 315, "08:45", "-$22.50"},
		},
		Cart: []CartItem{
			{1, "Crypto Trading Basics", 99, 1},
			{2, "Bitcoin Technical Analysis", 199, 1},
		},
		Events: []Event{
			{"09:00", "Morning market review", "webinar"},
			{"14:00", "Q&A session with an expert", "live"},
			{"18:30", "Evening analysis", "analysis"},
		},
		Chat: []Message{
			{"Andrii K.", "What does everyone think about BTC right now? Is it time to open a position?", "14:23", false},
			{"Anna S.", "I expect a correction to $40k. RSI shows overbought on the daily timeframe", "14:25", false},
			{"Maksym T.", "Agree with Anna. Trading volumes are also falling", "14:27", false},
			{"You", "What about Ethereum? The situation looks different there", "14:30", true},
			{"Ivan M.", "I ran a detailed analysis. Will share the charts in private messages", "14:32", false},
		},
		Topics: []Topic{
			{"Thoughts on the new Bitcoin ETFs?", 234, "CryptoGuru", "2h"},
			{"DCA strategy: share your experience", 156, "TradingPro", "4h"},
			{"Ethereum after the upgrade", 89, "EthExpert", "6h"},
			{"Altcoins with potential in 2024", 312, "AltSeeker", "8h"},
		},
		Profile: Profile{
			Name:         "Oleksii Trader",
			Email:        "student@academy.example",
			Plan:         "Pro",
			CoursesDone:  7,
			Certificates: 3,
			StudyHours:   142,
			RecentActivity: []Activity{
				{"Completed lesson", `"Reading Japanese candlesticks"`, "2 hours ago"},
				{"Earned certificate", `"Crypto Fundamentals"`, "1 day ago"},
				{"Joined group", `"Bitcoin analytics"`, "3 days ago"},
				{"Closed trade", "BTC/USDT +$67.50", "5 days ago"},
			},
		},
	}
}
