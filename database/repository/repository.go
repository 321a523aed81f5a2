package repository

import (
	bookingRepo "cardoctor/database/repository/booking"
	serviceRepo "cardoctor/database/repository/service"
)

// Re-export the ServiceRepository interface and constructor.
type ServiceRepository = serviceRepo.ServiceRepository

type ServiceListCriteria = serviceRepo.ListCriteria

var NewMongoServiceRepo = serviceRepo.NewMongoServiceRepo

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo
