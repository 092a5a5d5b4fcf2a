package i18n

var translations = map[string]map[string]string{
	"uz": {
		"success":                  "Muvaffaqiyatli",
		"error":                    "Xatolik",
		"not_found":                "Topilmadi",
		"unauthorized":             "Ruxsat etilmagan",
		"forbidden":                "Taqiqlangan",
		"invalid_request":          "Noto'g'ri so'rov",
		"phone_already_registered": "Bu telefon raqami allaqachon ro'yxatdan o'tgan",
		"invalid_credentials":      "Telefon raqami yoki parol noto'g'ri",
		"user_not_found":           "Foydalanuvchi topilmadi",
		"token_invalid":            "Token yaroqsiz",
		"food_not_found":           "Ovqat topilmadi",
		"food_deleted":             "Ovqat o'chirildi",
		"order_created":            "Buyurtma yaratildi",
		"order_not_found":          "Buyurtma topilmadi",
		"order_cancelled":          "Buyurtma bekor qilindi",
		"order_cannot_cancel":      "Buyurtmani bekor qilib bo'lmaydi",
		"order_status_updated":     "Buyurtma holati yangilandi",
		"order_invalid_status":     "Buyurtma holatini bunday o'zgartirib bo'lmaydi",
		"food_not_available":       "Ovqat mavjud emas",
		"invalid_quantity":         "Ovqat miqdori 0 dan katta bo'lishi kerak",
		"insufficient_stock":       "Yetarli miqdor yo'q",
		"invalid_fulfillment":      "Yetkazib berish usuli noto'g'ri ko'rsatilgan",
		"invalid_rating":           "Reyting 1 dan 5 gacha bo'lishi kerak",
		"already_reviewed":         "Siz bu ovqat uchun allaqachon sharh qoldirgansiz",
		"review_not_found":         "Sharh topilmadi",
		"review_created":           "Sharh qo'shildi",
		"review_deleted":           "Sharh o'chirildi",
		"new_order":                "Yangi buyurtma!",
		"order_id":                 "Buyurtma ID:",
		"customer":                 "Mijoz:",
		"phone":                    "Telefon:",
		"time":                     "Vaqt:",
		"order_items":              "Buyurtma tarkibi:",
		"total_amount":             "Umumiy summa:",
		"delivery_address":         "Yetkazib berish:",
		"pickup":                   "O'zi olib ketish:",
		"restaurant_table":         "Restoranda:",
		"payment_method":           "To'lov usuli:",
		"preparation_time":         "Tayyorlash vaqti:",
		"additional_notes":         "Qo'shimcha:",
		"order_accepted":           "Buyurtmangiz qabul qilindi!",
		"order_status_confirmed":   "Buyurtmangiz tasdiqlandi!",
		"order_status_preparing":   "Buyurtmangiz tayyorlanmoqda",
		"order_status_ready":       "Buyurtmangiz tayyor!",
		"order_status_delivered":   "Buyurtmangiz yetkazildi",
		"order_status_cancelled":   "Buyurtmangiz bekor qilindi",
		"shashlik":                 "Shashlik",
		"milliy_taomlar":           "Milliy taomlar",
		"ichimliklar":              "Ichimliklar",
		"salatlar":                 "Salatlar",
		"shirinliklar":             "Shirinliklar",
		"delivery":                 "Yetkazib berish",
		"own_withdrawal":           "O'zi olib ketish",
		"at_restaurant":            "Restoranda",
		"cash":                     "Naqd",
		"card":                     "Karta",
		"click":                    "Click",
		"payme":                    "Payme",
		"cart_empty":               "Savatda mahsulot yo'q",
	},
	"ru": {
		"success":                  "Успешно",
		"error":                    "Ошибка",
		"not_found":                "Не найдено",
		"unauthorized":             "Неавторизован",
		"forbidden":                "Запрещено",
		"invalid_request":          "Неверный запрос",
		"phone_already_registered": "Этот номер телефона уже зарегистрирован",
		"invalid_credentials":      "Неверный номер телефона или пароль",
		"user_not_found":           "Пользователь не найден",
		"token_invalid":            "Токен недействителен",
		"food_not_found":           "Блюдо не найдено",
		"food_deleted":             "Блюдо удалено",
		"order_created":            "Заказ создан",
		"order_not_found":          "Заказ не найден",
		"order_cancelled":          "Заказ отменен",
		"order_cannot_cancel":      "Заказ нельзя отменить",
		"order_status_updated":     "Статус заказа обновлен",
		"order_invalid_status":     "Недопустимая смена статуса заказа",
		"food_not_available":       "Блюдо недоступно",
		"invalid_quantity":         "Количество блюда должно быть больше 0",
		"insufficient_stock":       "Недостаточное количество",
		"invalid_fulfillment":      "Неверно указан способ получения заказа",
		"invalid_rating":           "Рейтинг должен быть от 1 до 5",
		"already_reviewed":         "Вы уже оставили отзыв на это блюдо",
		"review_not_found":         "Отзыв не найден",
		"review_created":           "Отзыв добавлен",
		"review_deleted":           "Отзыв удален",
		"new_order":                "Новый заказ!",
		"order_id":                 "ID заказа:",
		"customer":                 "Клиент:",
		"phone":                    "Телефон:",
		"time":                     "Время:",
		"order_items":              "Состав заказа:",
		"total_amount":             "Общая сумма:",
		"delivery_address":         "Доставка:",
		"pickup":                   "Самовывоз:",
		"restaurant_table":         "В ресторане:",
		"payment_method":           "Способ оплаты:",
		"preparation_time":         "Время приготовления:",
		"additional_notes":         "Дополнительно:",
		"order_accepted":           "Ваш заказ принят!",
		"order_status_confirmed":   "Ваш заказ подтвержден!",
		"order_status_preparing":   "Ваш заказ готовится",
		"order_status_ready":       "Ваш заказ готов!",
		"order_status_delivered":   "Ваш заказ доставлен",
		"order_status_cancelled":   "Ваш заказ отменен",
		"shashlik":                 "Шашлык",
		"milliy_taomlar":           "Национальные блюда",
		"ichimliklar":              "Напитки",
		"salatlar":                 "Салаты",
		"shirinliklar":             "Десерты",
		"delivery":                 "Доставка",
		"own_withdrawal":           "Самовывоз",
		"at_restaurant":            "В ресторане",
		"cash":                     "Наличные",
		"card":                     "Карта",
		"click":                    "Click",
		"payme":                    "Payme",
		"cart_empty":               "Корзина пуста",
	},
	"en": {
		"success":                  "Success",
		"error":                    "Error",
		"not_found":                "Not found",
		"unauthorized":             "Unauthorized",
		"forbidden":                "Forbidden",
		"invalid_request":          "Invalid request",
		"phone_already_registered": "This phone number is already registered",
		"invalid_credentials":      "Invalid phone number or password",
		"user_not_found":           "User not found",
		"token_invalid":            "Token is invalid",
		"food_not_found":           "Food not found",
		"food_deleted":             "Food deleted",
		"order_created":            "Order created",
		"order_not_found":          "Order not found",
		"order_cancelled":          "Order cancelled",
		"order_cannot_cancel":      "Order cannot be cancelled",
		"order_status_updated":     "Order status updated",
		"order_invalid_status":     "Order status transition not allowed",
		"food_not_available":       "Food not available",
		"invalid_quantity":         "Food quantity must be greater than 0",
		"insufficient_stock":       "Insufficient stock",
		"invalid_fulfillment":      "Fulfillment option is invalid",
		"invalid_rating":           "Rating must be between 1 and 5",
		"already_reviewed":         "You have already reviewed this food",
		"review_not_found":         "Review not found",
		"review_created":           "Review added",
		"review_deleted":           "Review deleted",
		"new_order":                "New order!",
		"order_id":                 "Order ID:",
		"customer":                 "Customer:",
		"phone":                    "Phone:",
		"time":                     "Time:",
		"order_items":              "Order items:",
		"total_amount":             "Total amount:",
		"delivery_address":         "Delivery:",
		"pickup":                   "Pickup:",
		"restaurant_table":         "At restaurant:",
		"payment_method":           "Payment method:",
		"preparation_time":         "Preparation time:",
		"additional_notes":         "Additional:",
		"order_accepted":           "Your order has been received!",
		"order_status_confirmed":   "Your order has been confirmed!",
		"order_status_preparing":   "Your order is being prepared",
		"order_status_ready":       "Your order is ready!",
		"order_status_delivered":   "Your order has been delivered",
		"order_status_cancelled":   "Your order has been cancelled",
		"shashlik":                 "Barbecue",
		"milliy_taomlar":           "National dishes",
		"ichimliklar":              "Drinks",
		"salatlar":                 "Salads",
		"shirinliklar":             "Desserts",
		"delivery":                 "Delivery",
		"own_withdrawal":           "Pickup",
		"at_restaurant":            "At restaurant",
		"cash":                     "Cash",
		"card":                     "Card",
		"click":                    "Click",
		"payme":                    "Payme",
		"cart_empty":               "Cart is empty",
	},
}
