package domain

// Profile — редактируемые данные покупателя. Поля необязательные:
// витрина не проверяет их глубже уровня формы.
type Profile struct {
	UserID    string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Bio       string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
}
