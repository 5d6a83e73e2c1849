package language

// Static per-build translation tables for the two supported locales.
var translations = map[string]map[string]interface{}{
	LangUz: {
		"home":               "Bosh Sahifa",
		"cart":               "Savatcha",
		"profile":            "Profil",
		"search_placeholder": "Mahsulotlarni qidirish...",
		"add_to_cart":        "Savatchaga qo'shish",
		"added_to_cart":      "Savatchaga qo'shildi",
		"wishlist_empty":     "Sevimlilar ro'yxati bo'sh",
		"cart_empty":         "Savatchangiz bo'sh",
		"checkout":           "Buyurtma berish",
		"total":              "Jami",
		"my_orders":          "Buyurtmalarim",
		"notifications":      "Bildirishnomalar",
		"seller_mode":        "Sotuvchi rejimi",
		"settings":           "Sozlamalar",
		"log_out":            "Chiqish",
		"categories": map[string]interface{}{
			"All":         "Barchasi",
			"Electronics": "Elektronika",
			"Audio":       "Audio",
			"Footwear":    "Oyoq kiyimlar",
			"Accessories": "Aksessuarlar",
		},
	},
	LangRu: {
		"home":               "Главная",
		"cart":               "Корзина",
		"profile":            "Профиль",
		"search_placeholder": "Поиск товаров...",
		"add_to_cart":        "Добавить в корзину",
		"added_to_cart":      "Добавлено в корзину",
		"wishlist_empty":     "Список желаний пуст",
		"cart_empty":         "Ваша корзина пуста",
		"checkout":           "Оформить заказ",
		"total":              "Итого",
		"my_orders":          "Мои заказы",
		"notifications":      "Уведомления",
		"seller_mode":        "Режим продавца",
		"settings":           "Настройки",
		"log_out":            "Выйти",
		"categories": map[string]interface{}{
			"All":         "Все",
			"Electronics": "Электроника",
			"Audio":       "Аудио",
			"Footwear":    "Обувь",
			"Accessories": "Аксессуары",
		},
	},
}
